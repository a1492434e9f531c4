package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/collectionkit/pkg/item"
	"github.com/go-drift/collectionkit/pkg/notify"
	"github.com/go-drift/collectionkit/pkg/section"
)

func TestObserveCountsNotifications(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	ch := notify.NewChannel("feed")
	sub := m.Observe(ch)

	s := section.NewOrdered(ch)
	s.AppendAll(item.WithID("a"), item.WithID("b"), item.WithID("c"))
	s.RemoveAt(0)
	s.Reload()
	ch.ReloadCollection()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("feed", "insert")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("feed", "delete")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.MutatedIndices.WithLabelValues("feed", "insert")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reloads.WithLabelValues("feed", "section")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reloads.WithLabelValues("feed", "collection")))

	sub.Cancel()
	s.Append(item.WithID("d"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("feed", "insert")))
}

func TestNewRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.RecordReload("x", notify.Reload{Subject: notify.SubjectSection})

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "collectionkit_reloads_total")
	assert.Panics(t, func() { New(reg) }, "duplicate registration")
}

func TestNewWithoutRegistry(t *testing.T) {
	m := New(nil)
	m.RecordMutation("x", notify.Mutation{Indices: []int{0, 1}, Action: notify.ActionDelete})
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MutatedIndices.WithLabelValues("x", "delete")))
}

func TestBatchSizePerChannel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.RecordMutation("feed", notify.Mutation{Indices: []int{0, 1, 2}, Action: notify.ActionInsert})
	m.RecordMutation("side", notify.Mutation{Indices: []int{0}, Action: notify.ActionInsert})
	m.RecordMutation("side", notify.Mutation{Indices: []int{0}, Action: notify.ActionDelete})

	assert.Equal(t, 3, testutil.CollectAndCount(m.BatchSize, "collectionkit_mutation_batch_size"))
}
