package stylist

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"VestiAI/app/common/consts/errno"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

const (
	minTopK     = 1
	maxTopK     = 5
	defaultTopK = 3
)

type (
	Item struct {
		Id       string
		Name     string
		Category string
		Color    string
		Brand    string
		PhotoUrl string
	}

	SuggestInput struct {
		Occasion string
		Weather  string
		Style    string
		TopK     int
		Items    []Item
	}

	OutfitDraft struct {
		Name      string   `json:"name"`
		Items     []string `json:"items"`
		Reasoning string   `json:"reasoning"`
		Palette   []string `json:"palette"`
		Preview   string   `json:"preview"`
	}

	suggestPayload struct {
		Outfits []OutfitDraft `json:"outfits"`
	}

	// Suggester turns closet items plus occasion parameters into outfit
	// drafts via the completion backend. The stub flag bypasses the backend
	// with a deterministic outfit; it is never triggered by backend
	// failures, which always surface as errors.
	Suggester struct {
		model model.BaseChatModel
		stub  bool
	}
)

func NewSuggester(cm model.BaseChatModel, stub bool) *Suggester {
	return &Suggester{
		model: cm,
		stub:  stub,
	}
}

// Suggest runs a two-tier completion strategy: a tool-forced structured call
// first, then a plain completion with JSON extraction, but only when the
// primary failed for an authorization/capability reason. Any other primary
// failure surfaces directly.
func (s *Suggester) Suggest(ctx context.Context, in SuggestInput) ([]OutfitDraft, error) {
	if strings.TrimSpace(in.Occasion) == "" {
		return nil, errors.New(errno.BadRequest, "occasion is required")
	}
	if len(in.Items) == 0 {
		return nil, errors.New(errno.NoItems, "no closet items to style")
	}
	if in.TopK <= 0 {
		in.TopK = defaultTopK
	}
	if in.TopK < minTopK {
		in.TopK = minTopK
	}
	if in.TopK > maxTopK {
		in.TopK = maxTopK
	}

	if s.stub {
		return []OutfitDraft{stubOutfit(in)}, nil
	}
	if s.model == nil {
		return nil, errors.New(errno.OpenAIError, "chat model unavailable")
	}

	messages := buildSuggestMessages(in)

	drafts, primaryErr := s.suggestStructured(ctx, messages, in.TopK)
	if primaryErr == nil {
		return drafts, nil
	}
	if !isCapabilityErr(primaryErr) {
		return nil, primaryErr
	}

	logx.WithContext(ctx).Errorf("structured completion rejected, retrying plain completion: %v", primaryErr)
	drafts, secondaryErr := s.suggestPlain(ctx, messages, in.TopK)
	if secondaryErr == nil {
		return drafts, nil
	}
	var cm *errors.CodeMsg
	if stderrors.As(secondaryErr, &cm) {
		return nil, secondaryErr
	}
	return nil, errors.New(errno.OpenAIError, fmt.Sprintf(
		"completion backend failed: %s (fallback: %s)",
		snippet(primaryErr.Error()), snippet(secondaryErr.Error())))
}

// suggestStructured is the primary API shape: bind the submit_outfits tool
// and force the model to call it, then parse the call arguments.
func (s *Suggester) suggestStructured(ctx context.Context, messages []*schema.Message, topK int) ([]OutfitDraft, error) {
	toolCapable, ok := s.model.(model.ToolCallingChatModel)
	if !ok {
		return nil, fmt.Errorf("chat model does not support tool calls")
	}
	toolModel, err := toolCapable.WithTools([]*schema.ToolInfo{outfitsTool()})
	if err != nil {
		return nil, fmt.Errorf("bind outfits tool: %w", err)
	}

	reply, err := toolModel.Generate(ctx, messages, model.WithToolChoice(schema.ToolChoiceForced))
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, fmt.Errorf("model returned empty message")
	}

	payload := toolArguments(reply)
	if payload == "" {
		// model ignored the forced tool and answered in prose
		return s.decode(reply.Content, topK)
	}
	return s.decodeDocument(payload, topK, payload)
}

// suggestPlain is the secondary, more widely supported API shape: a bare
// completion whose text reply goes through the fence-stripping extractor.
func (s *Suggester) suggestPlain(ctx context.Context, messages []*schema.Message, topK int) ([]OutfitDraft, error) {
	reply, err := s.model.Generate(ctx, messages)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, fmt.Errorf("model returned empty message")
	}
	doc, err := extractJSON(reply.Content)
	if err != nil {
		return nil, errors.New(errno.AIJSONParseError,
			"model reply contains no JSON object: "+snippet(reply.Content))
	}
	return s.decodeDocument(doc, topK, reply.Content)
}

func (s *Suggester) decode(content string, topK int) ([]OutfitDraft, error) {
	doc, err := extractJSON(content)
	if err != nil {
		return nil, errors.New(errno.AIJSONParseError,
			"model reply contains no JSON object: "+snippet(content))
	}
	return s.decodeDocument(doc, topK, content)
}

func (s *Suggester) decodeDocument(doc string, topK int, raw string) ([]OutfitDraft, error) {
	var payload suggestPayload
	if err := json.Unmarshal([]byte(doc), &payload); err != nil {
		return nil, errors.New(errno.AIJSONParseError,
			"model reply is not valid JSON: "+snippet(raw))
	}
	drafts := payload.Outfits[:0:len(payload.Outfits)]
	for _, d := range payload.Outfits {
		if len(d.Items) > 0 {
			drafts = append(drafts, d)
		}
	}
	if len(drafts) == 0 {
		return nil, errors.New(errno.AIEmptyOutfits, "model returned no outfits")
	}
	if len(drafts) > topK {
		drafts = drafts[:topK]
	}
	return drafts, nil
}

func toolArguments(msg *schema.Message) string {
	for _, call := range msg.ToolCalls {
		if strings.EqualFold(call.Function.Name, suggestToolName) {
			return strings.TrimSpace(call.Function.Arguments)
		}
	}
	return ""
}

// isCapabilityErr reports whether a primary-call failure is an
// authorization or unsupported-feature rejection, the only class that
// warrants retrying the secondary API shape. Typed stylist failures
// (parse/empty) never re-trigger the fallback.
func isCapabilityErr(err error) bool {
	var cm *errors.CodeMsg
	if stderrors.As(err, &cm) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"401", "403",
		"unauthorized", "not authorized", "permission denied",
		"does not support tool", "tool call", "function call", "unsupported",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// stubOutfit synthesizes a deterministic outfit for test environments
// without a completion backend.
func stubOutfit(in SuggestInput) OutfitDraft {
	ids := make([]string, 0, 3)
	palette := make([]string, 0, 3)
	preview := ""
	seen := make(map[string]bool)
	for _, item := range in.Items {
		if len(ids) == 3 {
			break
		}
		ids = append(ids, item.Id)
		if item.Color != "" && !seen[strings.ToLower(item.Color)] {
			seen[strings.ToLower(item.Color)] = true
			palette = append(palette, item.Color)
		}
		if preview == "" {
			preview = item.PhotoUrl
		}
	}
	return OutfitDraft{
		Name:      in.Occasion + " look",
		Items:     ids,
		Reasoning: "Stubbed suggestion assembled from the first closet items.",
		Palette:   palette,
		Preview:   preview,
	}
}
