package firmware

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Aggregate())

	errs.Add(nil, nil)
	require.NoError(t, errs.Aggregate())

	err1 := errors.New("first")
	errs.Add(err1)
	require.Equal(t, err1, errs.Aggregate())

	errs.Add(nil, errors.New("second"))
	err := errs.Aggregate()
	require.Error(t, err)
	require.Equal(t, "multiple errors: first; second", err.Error())
}
