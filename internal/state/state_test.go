package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: 1, Title: "pinned", Pinned: true},
		{ID: 2, Title: "plain"},
		{ID: 3, Title: "pinned trashed", Pinned: true, Trashed: true},
		{ID: 4, Title: "archived", Archived: true},
		{ID: 5, Title: "trashed", Trashed: true},
		{ID: 6, Title: "pinned archived", Pinned: true, Archived: true},
		{ID: 7, Title: "pinned too", Pinned: true},
	}
}

func ids(notes []models.Note) []int64 {
	out := make([]int64, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestWritable_SetNotifiesInOrder(t *testing.T) {
	w := NewWritable(0)
	var calls []string

	w.Subscribe(func(v int) { calls = append(calls, "first") })
	w.Subscribe(func(v int) {
		calls = append(calls, "second")
		assert.Equal(t, 7, w.Get(), "value must be replaced before notification")
	})

	w.Set(7)

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestWritable_Update(t *testing.T) {
	w := NewWritable([]int{1})
	var seen []int
	w.Subscribe(func(v []int) { seen = v })

	w.Update(func(v []int) []int { return append(v, 2) })

	assert.Equal(t, []int{1, 2}, w.Get())
	assert.Equal(t, []int{1, 2}, seen)
}

func TestWritable_Unsubscribe(t *testing.T) {
	w := NewWritable("a")
	count := 0
	unsubscribe := w.Subscribe(func(string) { count++ })

	w.Set("b")
	unsubscribe()
	unsubscribe()
	w.Set("c")

	assert.Equal(t, 1, count)
}

func TestWritable_SubscribeDoesNotReplay(t *testing.T) {
	w := NewWritable(1)
	called := false
	w.Subscribe(func(int) { called = true })
	assert.False(t, called)
}

func TestWritable_ConcurrentUpdates(t *testing.T) {
	w := NewWritable(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, w.Get())
}

func TestDerived_RecomputesAndCloses(t *testing.T) {
	src := NewWritable(2)
	d := NewDerived[int](src, func(v int) int { return v * 10 })
	assert.Equal(t, 20, d.Get())

	src.Set(3)
	assert.Equal(t, 30, d.Get())

	d.Close()
	src.Set(4)
	assert.Equal(t, 30, d.Get())
}

// TestViews_DisjointAndComplete checks that pinned and unpinned never share a
// note and together with the trashed or archived notes cover the collection.
func TestViews_DisjointAndComplete(t *testing.T) {
	notes := sampleNotes()
	pinned := PinnedView(notes)
	unpinned := UnpinnedView(notes)

	assert.Equal(t, []int64{1, 7}, ids(pinned))
	assert.Equal(t, []int64{2}, ids(unpinned))

	seen := make(map[int64]int)
	for _, n := range pinned {
		seen[n.ID]++
	}
	for _, n := range unpinned {
		seen[n.ID]++
	}
	for _, n := range notes {
		if !n.Active() {
			seen[n.ID]++
		}
	}

	require.Len(t, seen, len(notes))
	for id, count := range seen {
		assert.Equal(t, 1, count, "note %d counted %d times", id, count)
	}
}

func TestAppState_DerivedViewsFollowNotes(t *testing.T) {
	s := NewAppState()
	var pinnedSeen []models.Note
	s.Pinned.Subscribe(func(v []models.Note) { pinnedSeen = v })

	s.Notes.Set(sampleNotes())
	assert.Equal(t, []int64{1, 7}, ids(s.Pinned.Get()))
	assert.Equal(t, []int64{2}, ids(s.Unpinned.Get()))
	assert.Equal(t, []int64{1, 7}, ids(pinnedSeen))

	s.Notes.Update(func(n []models.Note) []models.Note {
		return PatchNote(n, 2, models.NotePatch{Pinned: models.Ptr(true)})
	})
	assert.Equal(t, []int64{1, 2, 7}, ids(s.Pinned.Get()))
	assert.Empty(t, s.Unpinned.Get())
}

func TestAppState_Close(t *testing.T) {
	s := NewAppState()
	s.Notes.Set(sampleNotes())
	s.Session.Set(models.Session{Email: "a@x"})

	s.Close()

	assert.Empty(t, s.Notes.Get())
	assert.False(t, s.Session.Get().Active())
	assert.Empty(t, s.Pinned.Get())

	s.Notes.Set(sampleNotes())
	assert.Empty(t, s.Pinned.Get(), "closed views must not follow the source")
}

func TestAppendNote(t *testing.T) {
	notes := []models.Note{{ID: 1}}
	out := AppendNote(notes, models.Note{ID: 2})

	assert.Equal(t, []int64{1, 2}, ids(out))
	assert.Len(t, notes, 1)
}

func TestRemoveNote(t *testing.T) {
	notes := sampleNotes()
	out := RemoveNote(notes, 5)

	assert.NotContains(t, ids(out), int64(5))
	assert.Len(t, out, len(notes)-1)
	assert.Contains(t, ids(notes), int64(5))
}

func TestPatchNote(t *testing.T) {
	notes := []models.Note{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	out := PatchNote(notes, 2, models.NotePatch{Title: models.Ptr("B")})

	assert.Equal(t, "B", out[1].Title)
	assert.Equal(t, "b", notes[1].Title)
	assert.Equal(t, "a", out[0].Title)
}

func TestPatchNote_UnknownIDIsNoop(t *testing.T) {
	notes := []models.Note{{ID: 1, Title: "a"}}
	assert.Equal(t, notes, PatchNote(notes, 99, models.NotePatch{Title: models.Ptr("x")}))
}

func TestMergePinned(t *testing.T) {
	current := sampleNotes()
	fresh := []models.Note{{ID: 8, Pinned: true}, {ID: 1, Title: "pinned v2", Pinned: true}}

	out := MergePinned(current, fresh)

	// stale active pinned notes (1, 7) are replaced by the fresh list
	assert.Equal(t, []int64{2, 3, 4, 5, 6, 8, 1}, ids(out))
	assert.Equal(t, "pinned v2", out[len(out)-1].Title)
}
