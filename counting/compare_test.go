package counting

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/tokenmaster/model"
	"github.com/randalmurphal/tokenmaster/tokens"
)

func TestCompare_AllModels(t *testing.T) {
	s := newService(t)
	text := "Hello, 世界! Token counting across models."

	cmp := s.Compare(context.Background(), text)

	require.Len(t, cmp.Entries, len(model.Supported()))
	assert.Equal(t, Stats(text).Characters, cmp.Characters)
	for i, info := range model.Supported() {
		e := cmp.Entries[i]
		assert.Equal(t, info.ID, e.Model, "order must follow the catalog")
		assert.Equal(t, info.Name, e.Name)
		assert.Equal(t, info.Provider.Color(), e.Color)
		assert.Equal(t, info.ContextWindow, e.ContextWindow)
		assert.Equal(t, tokens.EstimateTokens(string(info.ID), text), e.Tokens)
		assert.InDelta(t, float64(e.Tokens)/float64(info.ContextWindow)*100, e.FillPercent, 1e-9)
	}
}

func TestCompare_KeepsInputOrder(t *testing.T) {
	var calls atomic.Int32
	s := newService(t, WithRemote(fakeRemote(1000, nil, &calls)), WithConcurrency(3))
	ids := []model.ID{model.Llama31, model.Gemini25Flash, model.GPT5, model.Qwen3}

	cmp := s.Compare(context.Background(), "some text", ids...)

	require.Len(t, cmp.Entries, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, cmp.Entries[i].Model)
	}
	assert.Equal(t, 1000, cmp.Entries[1].Tokens)
	assert.Equal(t, SourceRemote, cmp.Entries[1].Source)
	assert.InDelta(t, 1000.0/1048576*100, cmp.Entries[1].FillPercent, 1e-9)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCompare_Empty(t *testing.T) {
	s := newService(t)

	cmp := s.Compare(context.Background(), "", model.GPT4o)
	assert.Empty(t, cmp.Entries)
	assert.Zero(t, cmp.Characters)

	_, ok := cmp.Largest()
	assert.False(t, ok)
}

func TestCompare_UnknownModel(t *testing.T) {
	s := newService(t)

	cmp := s.Compare(context.Background(), "abc", "mystery-model")
	require.Len(t, cmp.Entries, 1)

	e := cmp.Entries[0]
	assert.Equal(t, "mystery-model", e.Name)
	assert.Equal(t, model.DefaultColor, e.Color)
	assert.Equal(t, 1, e.Tokens)
	assert.Zero(t, e.ContextWindow)
	assert.Zero(t, e.FillPercent)
}

func TestComparison_Largest(t *testing.T) {
	s := newService(t)

	// Llama has the highest CJK ratio.
	cmp := s.Compare(context.Background(), "这是一个测试句子，用于比较模型。", model.DeepSeekV3, model.Llama31, model.GPT4o)
	largest, ok := cmp.Largest()
	require.True(t, ok)
	assert.Equal(t, model.Llama31, largest.Model)
}
