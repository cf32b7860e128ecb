package progress_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/connector"
	"github.com/pipelined/connector/internal/mock"
	"github.com/pipelined/connector/progress"
)

// chain builds
//	t1.SetValue2 -> t1.Value2 (caching) -> t2.Trigger -> t2.Value (not caching)
//	-> t3.AddItem -> t3.Items (caching) -> t4.TakeList (no observers)
func chain(t *testing.T) (t1, t2, t3, t4 *mock.Example) {
	t1, t2, t3, t4 = mock.New(), mock.New(), mock.New(), mock.New()
	require.NoError(t, connector.Connect(t1.Value2, t2.Trigger))
	require.NoError(t, connector.Connect(t2.Value, t3.AddItem))
	require.NoError(t, connector.Connect(t3.Items, t4.TakeList))
	return
}

// sink records progress values.
type sink struct {
	SetFraction *connector.Input
	SetProgress *connector.Input
	fractions   []float64
	progress    []progress.Progress
}

func newSink() *sink {
	s := &sink{}
	s.SetFraction = connector.NewInput(s, s.setFraction)
	s.SetProgress = connector.NewInput(s, s.setProgress)
	return s
}

func (s *sink) setFraction(f float64) {
	s.fractions = append(s.fractions, f)
}

func (s *sink) setProgress(p progress.Progress) {
	s.progress = append(s.progress, p)
}

func TestFilters(t *testing.T) {
	tests := []struct {
		description string
		filter      progress.Filter
		max         int
		message     string
	}{
		{
			description: "all",
			filter:      progress.All,
			max:         6,
			message:     "Example.TakeList has just finished",
		},
		{
			description: "outputs",
			filter:      progress.Outputs,
			max:         2,
			message:     "Example.Items has just finished",
		},
		{
			description: "outputs and unobserved inputs",
			filter:      progress.OutputsAndUnobservedInputs,
			max:         3,
			message:     "Example.TakeList has just finished",
		},
	}
	for _, test := range tests {
		t1, _, _, t4 := chain(t)
		i, err := progress.New(test.filter, "started", t1.SetValue2)
		require.NoError(t, err)
		assert.Equal(t, 0.0, i.Float(), test.description)
		assert.Equal(t, progress.Progress{Message: "started"}, i.Value(), test.description)

		require.NoError(t, t1.SetValue2.Set(2))
		// trigger does not change the value of t2
		assert.Equal(t, []int{0}, t4.List(), test.description)
		assert.Equal(t, progress.Progress{
			Max:     test.max,
			Done:    test.max,
			Message: test.message,
		}, i.Value(), test.description)
		assert.Equal(t, 1.0, i.Float(), test.description)
		assert.Equal(t, 100, i.Percent(), test.description)
		// indicator is detached
		assert.Equal(t, connector.Nop, t1.SetValue2.ProgressIndicator(), test.description)
		assert.Equal(t, connector.Nop, t4.TakeList.ProgressIndicator(), test.description)
	}
}

func TestOutputs(t *testing.T) {
	t1, _, _, _ := chain(t)
	i, err := progress.New(progress.Outputs, "", t1.SetValue2)
	require.NoError(t, err)
	s := newSink()
	require.NoError(t, connector.Connect(i.Fraction, s.SetFraction))
	require.NoError(t, connector.Connect(i.Progress, s.SetProgress))
	assert.Equal(t, []float64{0.0}, s.fractions)

	require.NoError(t, t1.SetValue2.Set(1))
	assert.Contains(t, s.fractions, 0.5)
	assert.Equal(t, 1.0, s.fractions[len(s.fractions)-1])
	last := s.progress[len(s.progress)-1]
	assert.Equal(t, progress.Progress{Max: 2, Done: 2}, last)
	assert.Equal(t, 100, i.Percentage.Get())

	require.NoError(t, i.Destroy())
	assert.Nil(t, i.Fraction)
	assert.Empty(t, s.SetFraction.Connections())
	// destroyed indicator ignores reports
	i.Report(t1.Value)
}

func TestSetMultipleValues(t *testing.T) {
	a, b := mock.New(), mock.New()
	require.NoError(t, connector.Connect(a.Value2, b.SetValue))
	i, err := progress.New(progress.All, "")
	require.NoError(t, err)

	err = connector.SetMultipleValues([]connector.Value{
		{Setter: a.SetValue2, Value: 1},
		{Setter: a.SetText, Value: "one"},
	}, i)
	require.NoError(t, err)
	p := i.Value()
	assert.Equal(t, p.Max, p.Done)
	// a.SetValue2, a.SetText, a.Value2, b.SetValue
	assert.Equal(t, 4, p.Max)
	assert.Equal(t, 2, b.Val())
}

func TestAdd(t *testing.T) {
	e := mock.New()
	_, err := progress.New(progress.All, "", e.Value)
	assert.True(t, errors.Is(err, connector.ErrConnectionType))

	i, err := progress.New(nil, "")
	require.NoError(t, err)
	require.NoError(t, i.Add(connector.NewProxy(e.SetValue, e)))
	assert.Equal(t, i, e.SetValue.ProgressIndicator())
}
