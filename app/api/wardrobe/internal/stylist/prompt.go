package stylist

import (
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
)

const suggestToolName = "submit_outfits"

const suggestSystemPrompt = `You are a personal stylist. Compose outfits only from the closet items listed in the user message, referencing items strictly by their ids. Respond with a single JSON object and nothing else, no explanations, no markdown fences. Shape:
{"outfits": [{"name": "outfit title", "items": ["item id"], "reasoning": "one or two sentences", "palette": ["color name"], "preview": "image url or empty"}]}
Rules:
- use only ids that appear in the item list, never invent ids
- every outfit needs at least one item
- palette lists plain color names drawn from the chosen items
- reply with valid JSON only`

const describeSystemPrompt = `You label clothing photos for a wardrobe catalog. Look at the image and respond with a single JSON object and nothing else, exactly this shape:
{"name": "short item name", "category": "tee|jeans|shoes|jacket|hat|bag|other", "color": "dominant color", "brand": "brand if visible, else empty"}
Reply with valid JSON only, no markdown fences.`

func buildSuggestMessages(in SuggestInput) []*schema.Message {
	var sb strings.Builder
	sb.WriteString("Closet items (id | name | category | color | brand | photo):\n")
	for _, item := range in.Items {
		sb.WriteString(fmt.Sprintf("- %s | %s | %s | %s | %s | %s\n",
			item.Id, item.Name, item.Category, item.Color, item.Brand, item.PhotoUrl))
	}
	sb.WriteString("\nOccasion: ")
	sb.WriteString(in.Occasion)
	if in.Weather != "" {
		sb.WriteString("\nWeather: ")
		sb.WriteString(in.Weather)
	}
	if in.Style != "" {
		sb.WriteString("\nStyle preference: ")
		sb.WriteString(in.Style)
	}
	sb.WriteString(fmt.Sprintf("\nCompose %d outfit(s).\n", in.TopK))

	return []*schema.Message{
		schema.SystemMessage(suggestSystemPrompt),
		schema.UserMessage(sb.String()),
	}
}

func buildDescribeMessages(imageURL string) []*schema.Message {
	user := &schema.Message{
		Role: schema.User,
		MultiContent: []schema.ChatMessagePart{
			{
				Type: schema.ChatMessagePartTypeText,
				Text: "Describe this clothing item.",
			},
			{
				Type:     schema.ChatMessagePartTypeImageURL,
				ImageURL: &schema.ChatMessageImageURL{URL: imageURL},
			},
		},
	}
	return []*schema.Message{
		schema.SystemMessage(describeSystemPrompt),
		user,
	}
}

func outfitsTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: suggestToolName,
		Desc: "Submit the composed outfits as structured data.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"outfits": {
				Type:     schema.Array,
				Desc:     "Composed outfits, best first.",
				Required: true,
				ElemInfo: &schema.ParameterInfo{
					Type: schema.Object,
					SubParams: map[string]*schema.ParameterInfo{
						"name": {
							Type:     schema.String,
							Desc:     "Outfit title.",
							Required: true,
						},
						"items": {
							Type:     schema.Array,
							Desc:     "Ids of the closet items used.",
							Required: true,
							ElemInfo: &schema.ParameterInfo{Type: schema.String},
						},
						"reasoning": {
							Type: schema.String,
							Desc: "Why the pieces work together.",
						},
						"palette": {
							Type:     schema.Array,
							Desc:     "Color names of the look.",
							ElemInfo: &schema.ParameterInfo{Type: schema.String},
						},
						"preview": {
							Type: schema.String,
							Desc: "Preview image url, may be empty.",
						},
					},
				},
			},
		}),
	}
}
