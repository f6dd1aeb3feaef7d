package smartcontract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamFlagHas(t *testing.T) {
	require.True(t, SendAmount.Has(SendAmount))
	require.True(t, SendAmount.Has(NoFlags))
	require.False(t, NoFlags.Has(SendAmount))
}

func TestParamFlagValidate(t *testing.T) {
	require.NoError(t, SendAmount.Validate(AmountType))
	require.NoError(t, NoFlags.Validate(AmountType))
	for pt := range validParamTypes {
		require.NoError(t, NoFlags.Validate(pt))
		if pt == AmountType {
			continue
		}
		err := SendAmount.Validate(pt)
		require.ErrorIs(t, err, ErrFlagTypeMismatch, "SendAmount must be rejected on %s", pt)
	}
	// Unrecognized bits are rejected no matter the type.
	require.ErrorIs(t, ParamFlag(0x1).Validate(AmountType), ErrFlagTypeMismatch)
	require.ErrorIs(t, (SendAmount | 0x20000).Validate(AmountType), ErrFlagTypeMismatch)
}
