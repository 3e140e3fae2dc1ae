package stylist

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"VestiAI/app/common/consts/errno"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/x/errors"
)

// fakeModel answers Generate calls from a scripted queue; WithTools returns
// the fake itself so both completion shapes hit the same script.
type fakeModel struct {
	replies []func() (*schema.Message, error)
	calls   int
}

func (f *fakeModel) Generate(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	if f.calls >= len(f.replies) {
		return nil, fmt.Errorf("unexpected call %d", f.calls)
	}
	reply := f.replies[f.calls]
	f.calls++
	return reply()
}

func (f *fakeModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, fmt.Errorf("stream not scripted")
}

func (f *fakeModel) WithTools(_ []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	return f, nil
}

func toolReply(arguments string) func() (*schema.Message, error) {
	return func() (*schema.Message, error) {
		return &schema.Message{
			Role: schema.Assistant,
			ToolCalls: []schema.ToolCall{{
				Function: schema.FunctionCall{
					Name:      suggestToolName,
					Arguments: arguments,
				},
			}},
		}, nil
	}
}

func textReply(content string) func() (*schema.Message, error) {
	return func() (*schema.Message, error) {
		return schema.AssistantMessage(content, nil), nil
	}
}

func failReply(msg string) func() (*schema.Message, error) {
	return func() (*schema.Message, error) {
		return nil, stderrors.New(msg)
	}
}

func testInput() SuggestInput {
	return SuggestInput{
		Occasion: "Work",
		TopK:     2,
		Items: []Item{
			{Id: "rec1", Name: "blue tee", Category: "tee", Color: "blue", PhotoUrl: "https://cdn/a.jpg"},
			{Id: "rec2", Name: "jeans", Category: "jeans", Color: "indigo"},
			{Id: "rec3", Name: "sneakers", Category: "shoes", Color: "white"},
		},
	}
}

func codeOf(t *testing.T, err error) int {
	t.Helper()
	var cm *errors.CodeMsg
	require.ErrorAs(t, err, &cm)
	return cm.Code
}

func TestSuggestToolPath(t *testing.T) {
	fm := &fakeModel{replies: []func() (*schema.Message, error){
		toolReply(`{"outfits":[{"name":"Office","items":["rec1","rec2"],"reasoning":"clean","palette":["blue"]}]}`),
	}}
	s := NewSuggester(fm, false)

	drafts, err := s.Suggest(context.Background(), testInput())
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Office", drafts[0].Name)
	assert.Equal(t, []string{"rec1", "rec2"}, drafts[0].Items)
	assert.Equal(t, 1, fm.calls)
}

func TestSuggestFallsBackOnCapabilityError(t *testing.T) {
	fm := &fakeModel{replies: []func() (*schema.Message, error){
		failReply("api error: 403 permission denied"),
		textReply("```json\n{\"outfits\":[{\"name\":\"Casual\",\"items\":[\"rec3\"]}]}\n```"),
	}}
	s := NewSuggester(fm, false)

	drafts, err := s.Suggest(context.Background(), testInput())
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Casual", drafts[0].Name)
	assert.Equal(t, 2, fm.calls)
}

func TestSuggestNoFallbackOnOtherErrors(t *testing.T) {
	fm := &fakeModel{replies: []func() (*schema.Message, error){
		failReply("connection reset by peer"),
	}}
	s := NewSuggester(fm, false)

	_, err := s.Suggest(context.Background(), testInput())
	require.Error(t, err)
	assert.Equal(t, 1, fm.calls)
}

func TestSuggestBothShapesFail(t *testing.T) {
	fm := &fakeModel{replies: []func() (*schema.Message, error){
		failReply("401 unauthorized"),
		failReply("401 unauthorized"),
	}}
	s := NewSuggester(fm, false)

	_, err := s.Suggest(context.Background(), testInput())
	assert.Equal(t, errno.OpenAIError, codeOf(t, err))
}

func TestSuggestParseError(t *testing.T) {
	fm := &fakeModel{replies: []func() (*schema.Message, error){
		toolReply("not json at all"),
	}}
	s := NewSuggester(fm, false)

	_, err := s.Suggest(context.Background(), testInput())
	assert.Equal(t, errno.AIJSONParseError, codeOf(t, err))
}

func TestSuggestEmptyOutfits(t *testing.T) {
	fm := &fakeModel{replies: []func() (*schema.Message, error){
		toolReply(`{"outfits":[]}`),
	}}
	s := NewSuggester(fm, false)

	_, err := s.Suggest(context.Background(), testInput())
	assert.Equal(t, errno.AIEmptyOutfits, codeOf(t, err))
}

func TestSuggestDropsItemlessOutfitsAndTruncates(t *testing.T) {
	fm := &fakeModel{replies: []func() (*schema.Message, error){
		toolReply(`{"outfits":[
			{"name":"empty","items":[]},
			{"name":"a","items":["rec1"]},
			{"name":"b","items":["rec2"]},
			{"name":"c","items":["rec3"]}]}`),
	}}
	s := NewSuggester(fm, false)

	drafts, err := s.Suggest(context.Background(), testInput())
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "a", drafts[0].Name)
	assert.Equal(t, "b", drafts[1].Name)
}

func TestSuggestValidation(t *testing.T) {
	s := NewSuggester(&fakeModel{}, false)

	_, err := s.Suggest(context.Background(), SuggestInput{Items: []Item{{Id: "rec1"}}})
	assert.Equal(t, errno.BadRequest, codeOf(t, err))

	_, err = s.Suggest(context.Background(), SuggestInput{Occasion: "Work"})
	assert.Equal(t, errno.NoItems, codeOf(t, err))
}

func TestSuggestStubSkipsBackend(t *testing.T) {
	fm := &fakeModel{}
	s := NewSuggester(fm, true)

	drafts, err := s.Suggest(context.Background(), testInput())
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Work look", drafts[0].Name)
	assert.Equal(t, []string{"rec1", "rec2", "rec3"}, drafts[0].Items)
	assert.Equal(t, []string{"blue", "indigo", "white"}, drafts[0].Palette)
	assert.Equal(t, "https://cdn/a.jpg", drafts[0].Preview)
	assert.Equal(t, 0, fm.calls)
}

func TestSuggestNilModel(t *testing.T) {
	s := NewSuggester(nil, false)

	_, err := s.Suggest(context.Background(), testInput())
	assert.Equal(t, errno.OpenAIError, codeOf(t, err))
}
