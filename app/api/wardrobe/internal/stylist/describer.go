package stylist

import (
	"context"
	"encoding/json"

	"VestiAI/app/common/consts/errno"

	"github.com/cloudwego/eino/components/model"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type (
	ItemDescription struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Color    string `json:"color"`
		Brand    string `json:"brand"`
	}

	// Describer asks the vision-capable completion backend to label a
	// clothing photo. It is best-effort: malformed model output yields a
	// zero-valued description, not an error; only backend transport
	// failures surface.
	Describer struct {
		model model.BaseChatModel
	}
)

func NewDescriber(cm model.BaseChatModel) *Describer {
	return &Describer{
		model: cm,
	}
}

func (d *Describer) Describe(ctx context.Context, imageURL string) (ItemDescription, error) {
	var desc ItemDescription
	if d.model == nil {
		return desc, errors.New(errno.OpenAIError, "chat model unavailable")
	}

	reply, err := d.model.Generate(ctx, buildDescribeMessages(imageURL))
	if err != nil {
		return desc, errors.New(errno.OpenAIError, "describe request failed: "+snippet(err.Error()))
	}
	if reply == nil {
		return desc, nil
	}

	doc, err := extractJSON(reply.Content)
	if err != nil {
		logx.WithContext(ctx).Errorf("describe reply has no JSON, returning empty description: %s", snippet(reply.Content))
		return ItemDescription{}, nil
	}
	if err := json.Unmarshal([]byte(doc), &desc); err != nil {
		logx.WithContext(ctx).Errorf("describe reply is not valid JSON, returning empty description: %v", err)
		return ItemDescription{}, nil
	}
	return desc, nil
}
