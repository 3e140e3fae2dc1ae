package logic

import (
	"context"
	"testing"

	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/consts/biz"
	"VestiAI/app/common/consts/errno"
	"VestiAI/app/dal/airtable"
	closetdal "VestiAI/app/dal/closet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/x/errors"
)

type fakeCloset struct {
	items    map[string]*closetdal.ClosetItem
	inserted []*closetdal.ClosetItem
	patches  []closetdal.Patch
	deleted  []string

	searchOwner string
	searchQuery string
	searchLimit int
}

func (f *fakeCloset) FindOne(_ context.Context, id string) (*closetdal.ClosetItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, airtable.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeCloset) FindMany(_ context.Context, ids []string) ([]*closetdal.ClosetItem, error) {
	var out []*closetdal.ClosetItem
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCloset) Search(_ context.Context, ownerId, nameQuery string, limit int) ([]*closetdal.ClosetItem, error) {
	f.searchOwner, f.searchQuery, f.searchLimit = ownerId, nameQuery, limit
	var out []*closetdal.ClosetItem
	for _, item := range f.items {
		if item.OwnerUserId == "" || item.OwnerUserId == ownerId {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCloset) Insert(_ context.Context, item *closetdal.ClosetItem) (*closetdal.ClosetItem, error) {
	created := *item
	created.Id = "recNew"
	f.inserted = append(f.inserted, &created)
	return &created, nil
}

func (f *fakeCloset) Update(_ context.Context, id string, patch closetdal.Patch) (*closetdal.ClosetItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, airtable.ErrRecordNotFound
	}
	f.patches = append(f.patches, patch)
	updated := *item
	if patch.Color != nil {
		updated.Color = *patch.Color
	}
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	return &updated, nil
}

func (f *fakeCloset) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return airtable.ErrRecordNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func userCtx(userId string) context.Context {
	return context.WithValue(context.Background(), biz.USER_KEY, userId)
}

func codeOf(t *testing.T, err error) int {
	t.Helper()
	var cm *errors.CodeMsg
	require.ErrorAs(t, err, &cm)
	return cm.Code
}

func TestListClosetItemsScopesToUser(t *testing.T) {
	fake := &fakeCloset{items: map[string]*closetdal.ClosetItem{
		"rec1": {Id: "rec1", Name: "blue tee", OwnerUserId: "alice"},
	}}
	l := NewListClosetItemsLogic(userCtx("alice"), &svc.ServiceContext{Closet: fake})

	items, err := l.ListClosetItems(&types.ListClosetRequest{Q: "shirt", Limit: 50})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "alice", fake.searchOwner)
	assert.Equal(t, "shirt", fake.searchQuery)
	assert.Equal(t, 50, fake.searchLimit)
}

func TestCreateClosetItemSetsOwner(t *testing.T) {
	fake := &fakeCloset{items: map[string]*closetdal.ClosetItem{}}
	l := NewCreateClosetItemLogic(userCtx("alice"), &svc.ServiceContext{Closet: fake})

	item, err := l.CreateClosetItem(&types.CreateClosetItemRequest{
		Name:     "blue tee",
		Category: "tee",
		ImageUrl: "https://cdn/a.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "recNew", item.Id)
	assert.Equal(t, "https://cdn/a.jpg", item.ImageUrl)
	require.Len(t, fake.inserted, 1)
	assert.Equal(t, "alice", fake.inserted[0].OwnerUserId)
}

func TestCreateClosetItemRejectsBlankName(t *testing.T) {
	l := NewCreateClosetItemLogic(userCtx("alice"), &svc.ServiceContext{Closet: &fakeCloset{}})

	_, err := l.CreateClosetItem(&types.CreateClosetItemRequest{Name: "   ", Category: "tee"})
	assert.Equal(t, errno.BadRequest, codeOf(t, err))
}

func TestUpdateClosetItemForbiddenForNonOwner(t *testing.T) {
	fake := &fakeCloset{items: map[string]*closetdal.ClosetItem{
		"rec1": {Id: "rec1", Name: "blue tee", OwnerUserId: "alice"},
	}}
	l := NewUpdateClosetItemLogic(userCtx("bob"), &svc.ServiceContext{Closet: fake})

	_, err := l.UpdateClosetItem(&types.UpdateClosetItemRequest{Id: "rec1", Color: "red"})
	assert.Equal(t, errno.Forbidden, codeOf(t, err))
	assert.Empty(t, fake.patches)
}

func TestUpdateClosetItemPatchesSuppliedFieldsOnly(t *testing.T) {
	fake := &fakeCloset{items: map[string]*closetdal.ClosetItem{
		"rec1": {Id: "rec1", Name: "blue tee", Color: "blue", OwnerUserId: "alice"},
	}}
	l := NewUpdateClosetItemLogic(userCtx("alice"), &svc.ServiceContext{Closet: fake})

	item, err := l.UpdateClosetItem(&types.UpdateClosetItemRequest{Id: "rec1", Color: "red"})
	require.NoError(t, err)
	assert.Equal(t, "red", item.Color)
	assert.Equal(t, "blue tee", item.Name)

	require.Len(t, fake.patches, 1)
	assert.Nil(t, fake.patches[0].Name)
	require.NotNil(t, fake.patches[0].Color)
	assert.Equal(t, "red", *fake.patches[0].Color)
}

func TestUpdateClosetItemNotFound(t *testing.T) {
	l := NewUpdateClosetItemLogic(userCtx("alice"), &svc.ServiceContext{Closet: &fakeCloset{}})

	_, err := l.UpdateClosetItem(&types.UpdateClosetItemRequest{Id: "recX", Color: "red"})
	assert.Equal(t, errno.ItemNotFound, codeOf(t, err))
}

func TestDeleteClosetItemForbiddenForNonOwner(t *testing.T) {
	fake := &fakeCloset{items: map[string]*closetdal.ClosetItem{
		"rec1": {Id: "rec1", OwnerUserId: "alice"},
	}}
	l := NewDeleteClosetItemLogic(userCtx("bob"), &svc.ServiceContext{Closet: fake})

	err := l.DeleteClosetItem(&types.DeleteClosetItemRequest{Id: "rec1"})
	assert.Equal(t, errno.Forbidden, codeOf(t, err))
	assert.Empty(t, fake.deleted)
}

func TestDeleteClosetItemByOwner(t *testing.T) {
	fake := &fakeCloset{items: map[string]*closetdal.ClosetItem{
		"rec1": {Id: "rec1", OwnerUserId: "alice"},
	}}
	l := NewDeleteClosetItemLogic(userCtx("alice"), &svc.ServiceContext{Closet: fake})

	require.NoError(t, l.DeleteClosetItem(&types.DeleteClosetItemRequest{Id: "rec1"}))
	assert.Equal(t, []string{"rec1"}, fake.deleted)
}
