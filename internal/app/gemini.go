package app

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Model ids per tier. The router picks the tier; this table picks the model.
var tierModels = map[ModelTier]string{
	TierGeneral:   "gemini-3-pro-preview",
	TierImage:     "gemini-2.5-flash-image",
	TierReasoning: "gemini-3-pro-preview",
	TierLocation:  "gemini-2.5-flash",
	TierSearch:    "gemini-3-flash-preview",
	TierLite:      "gemini-2.5-flash-lite-latest",
}

// GeminiGenerator shapes each call from the routing decision and translates
// the backend response into a GenerateResult. It never surfaces an error:
// failures become FallbackText.
type GeminiGenerator struct {
	client  *genai.Client
	log     *Logger
	timeout time.Duration
}

func NewGeminiGenerator(ctx context.Context, apiKey string, logger *Logger, timeout time.Duration) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &GeminiGenerator{client: client, log: logger, timeout: timeout}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) GenerateResult {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	decision := Route(req.Prompt, len(req.History), req.Attachment != nil)

	contents, err := buildContents(req)
	if err != nil {
		g.log.Error("attachment decode failed", map[string]interface{}{"error": err.Error()})
		return GenerateResult{Text: FallbackText}
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(decision.Temperature),
	}
	// Persona directive rides on every call except raw image analysis.
	if req.Attachment == nil {
		config.SystemInstruction = genai.NewContentFromText(SystemInstruction(req.Mood), genai.RoleUser)
	}
	if decision.ExtendedReasoning {
		config.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(decision.ThinkingBudget),
		}
	}
	if decision.ImageAspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: decision.ImageAspectRatio}
	}
	if decision.HasTool(ToolMapLookup) {
		config.Tools = append(config.Tools, &genai.Tool{GoogleMaps: &genai.GoogleMaps{}})
		if req.Location != nil {
			config.ToolConfig = &genai.ToolConfig{
				RetrievalConfig: &genai.RetrievalConfig{
					LatLng: &genai.LatLng{
						Latitude:  genai.Ptr(req.Location.Latitude),
						Longitude: genai.Ptr(req.Location.Longitude),
					},
				},
			}
		}
	}
	if decision.HasTool(ToolWebSearch) {
		config.Tools = append(config.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
	}

	model := tierModels[decision.Tier]
	resp, err := g.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		g.log.Error("generation failed", map[string]interface{}{
			"model": model,
			"tier":  string(decision.Tier),
			"error": err.Error(),
		})
		return GenerateResult{Text: FallbackText}
	}
	return parseResponse(resp)
}

func buildContents(req GenerateRequest) ([]*genai.Content, error) {
	if req.Attachment != nil {
		data, err := base64.StdEncoding.DecodeString(req.Attachment.Data)
		if err != nil {
			return nil, err
		}
		prompt := req.Prompt
		if strings.TrimSpace(prompt) == "" {
			prompt = "Ushbu rasmni tahlil qiling."
		}
		return []*genai.Content{
			genai.NewContentFromParts([]*genai.Part{
				genai.NewPartFromBytes(data, req.Attachment.MIMEType),
				genai.NewPartFromText(prompt),
			}, genai.RoleUser),
		}, nil
	}

	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		var role genai.Role = genai.RoleUser
		if turn.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))
	return contents, nil
}

func parseResponse(resp *genai.GenerateContentResponse) GenerateResult {
	var out GenerateResult
	if resp == nil || len(resp.Candidates) == 0 {
		out.Text = "Javob olib bo'lmadi."
		return out
	}
	cand := resp.Candidates[0]

	if cand.GroundingMetadata != nil {
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			switch {
			case chunk.Web != nil:
				out.GroundingSources = append(out.GroundingSources, GroundingSource{Title: chunk.Web.Title, URI: chunk.Web.URI})
			case chunk.Maps != nil:
				out.GroundingSources = append(out.GroundingSources, GroundingSource{Title: chunk.Maps.Title, URI: chunk.Maps.URI})
			}
		}
	}

	var text strings.Builder
	if cand.Content != nil {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil {
				out.ImageURL = "data:" + part.InlineData.MIMEType + ";base64," +
					base64.StdEncoding.EncodeToString(part.InlineData.Data)
				continue
			}
			text.WriteString(part.Text)
		}
	}

	out.Text = strings.TrimSpace(text.String())
	if out.Text == "" {
		if out.ImageURL != "" {
			out.Text = "Tasvir yaratildi."
		} else {
			out.Text = "Javob olib bo'lmadi."
		}
	}
	return out
}
