package app

import "regexp"

// ModelTier names a backend configuration profile. The generation client maps
// tiers to concrete model ids; the router only decides the tier.
type ModelTier string

const (
	TierGeneral   ModelTier = "general"   // default conversational model
	TierImage     ModelTier = "image"     // image-capable model
	TierReasoning ModelTier = "reasoning" // top model with extended reasoning
	TierLocation  ModelTier = "location"  // model with map grounding
	TierSearch    ModelTier = "search"    // model with web-search grounding
	TierLite      ModelTier = "lite"      // low-latency model for short prompts
)

type ToolKind string

const (
	ToolWebSearch ToolKind = "web_search"
	ToolMapLookup ToolKind = "map_lookup"
)

// RoutingDecision is the full call shape selected for one prompt.
type RoutingDecision struct {
	Tier              ModelTier
	Tools             []ToolKind
	Temperature       float32
	ExtendedReasoning bool
	ThinkingBudget    int32
	ImageAspectRatio  string
}

// thinkingBudgetTokens is the fixed reasoning allowance whenever extended
// reasoning is enabled, regardless of which branch enabled it.
const thinkingBudgetTokens int32 = 12000

const shortPromptRunes = 50

// Intent patterns over the raw prompt, in the product's working language.
// Each is an independent disjunction of literal phrase fragments.
var (
	duelIntentRe     = regexp.MustCompile(`(?i)duel boshla|o'yin boshla|duel o'ynaymiz|kimligimni top`)
	parallelIntentRe = regexp.MustCompile(`(?i)parallel|o'xshashlik|qiyos|solishtir|jahon adabiyoti|farqi`)
	imageGenIntentRe = regexp.MustCompile(`(?i)chizib ber|tasvirlab ber|vizual|rasmini yarat|image|draw`)
	locationQueryRe  = regexp.MustCompile(`(?i)joylashuv|manzil|qayerda|restoran|kafe|muzey|xarita|masofa`)
	newsQueryRe      = regexp.MustCompile(`(?i)yangilik|bugun|kecha|oxirgi|prezident|narx|ob-havo`)
)

// Route classifies a prompt into a RoutingDecision. It is pure: the same
// inputs always produce the same decision, and every prompt falls through to
// the default branch if nothing else matches.
//
// The branches below are evaluated top to bottom and the first satisfied one
// wins; the patterns themselves are not mutually exclusive, so order is the
// tie-break.
func Route(prompt string, historyLength int, hasAttachment bool) RoutingDecision {
	isDuel := duelIntentRe.MatchString(prompt)
	isParallel := parallelIntentRe.MatchString(prompt)

	switch {
	case imageGenIntentRe.MatchString(prompt):
		return RoutingDecision{
			Tier:             TierImage,
			Temperature:      0.9,
			ImageAspectRatio: "1:1",
		}
	case hasAttachment || isDuel || isParallel:
		temp := float32(0.7)
		if isDuel || isParallel {
			temp = 0.9
		}
		return RoutingDecision{
			Tier:              TierReasoning,
			Temperature:       temp,
			ExtendedReasoning: true,
			ThinkingBudget:    thinkingBudgetTokens,
		}
	case locationQueryRe.MatchString(prompt):
		return RoutingDecision{
			Tier:        TierLocation,
			Tools:       []ToolKind{ToolMapLookup},
			Temperature: 0.7,
		}
	case newsQueryRe.MatchString(prompt):
		return RoutingDecision{
			Tier:        TierSearch,
			Tools:       []ToolKind{ToolWebSearch},
			Temperature: 0.7,
		}
	case len([]rune(prompt)) < shortPromptRunes && historyLength < 3:
		return RoutingDecision{
			Tier:        TierLite,
			Temperature: 0.7,
		}
	default:
		return RoutingDecision{
			Tier:        TierGeneral,
			Temperature: 0.7,
		}
	}
}

// HasTool reports whether the decision carries the given tool.
func (d RoutingDecision) HasTool(kind ToolKind) bool {
	for _, t := range d.Tools {
		if t == kind {
			return true
		}
	}
	return false
}
