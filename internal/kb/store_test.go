package kb

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thinknest/internal/domain"
)

func sampleKB() *domain.KnowledgeBase {
	return &domain.KnowledgeBase{
		Filename:   "company.txt",
		Content:    "Founded: 1998. Headquarters: Springfield, IL.",
		UploadDate: time.Now(),
		Chunks: []domain.Chunk{
			{Content: "Founded: 1998. Headquarters: Springfield, IL", Index: 0},
		},
	}
}

func TestStore(t *testing.T) {
	t.Run("empty store returns nil", func(t *testing.T) {
		s := NewStore("")
		assert.Nil(t, s.Get())
	})

	t.Run("set and get without persistence", func(t *testing.T) {
		s := NewStore("")
		kb := sampleKB()
		require.NoError(t, s.Set(kb))
		assert.Same(t, kb, s.Get())
	})

	t.Run("set persists and load restores", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.json")
		s := NewStore(path)
		kb := sampleKB()
		require.NoError(t, s.Set(kb))

		restored := NewStore(path)
		require.NoError(t, restored.Load())
		got := restored.Get()
		require.NotNil(t, got)
		assert.Equal(t, kb.Filename, got.Filename)
		assert.Equal(t, kb.Content, got.Content)
		assert.Equal(t, kb.Chunks, got.Chunks)
		assert.WithinDuration(t, kb.UploadDate, got.UploadDate, time.Second)
	})

	t.Run("load with missing file is not an error", func(t *testing.T) {
		s := NewStore(filepath.Join(t.TempDir(), "absent.json"))
		require.NoError(t, s.Load())
		assert.Nil(t, s.Get())
	})

	t.Run("remove clears snapshot and file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.json")
		s := NewStore(path)
		require.NoError(t, s.Set(sampleKB()))
		require.NoError(t, s.Remove())
		assert.Nil(t, s.Get())
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		s := NewStore(filepath.Join(t.TempDir(), "kb.json"))
		require.NoError(t, s.Remove())
		require.NoError(t, s.Remove())
	})

	t.Run("set replaces the whole snapshot", func(t *testing.T) {
		s := NewStore("")
		require.NoError(t, s.Set(sampleKB()))
		replacement := &domain.KnowledgeBase{Filename: "other.txt", UploadDate: time.Now()}
		require.NoError(t, s.Set(replacement))
		assert.Equal(t, "other.txt", s.Get().Filename)
		assert.Empty(t, s.Get().Chunks)
	})
}
