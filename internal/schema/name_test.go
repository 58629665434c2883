package schema

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var outputNameRe = regexp.MustCompile(`^(single|combined)_[0-9a-f]{16}\.csv$`)

func TestOutputName_Format(t *testing.T) {
	header := Header{"Name", "Age", "City"}

	single := OutputName(header, 1)
	combined := OutputName(header, 3)

	assert.Regexp(t, outputNameRe, single)
	assert.Regexp(t, outputNameRe, combined)
	assert.True(t, len(single) >= len("single_")+16+len(".csv"))
}

func TestOutputName_PrefixByMemberCount(t *testing.T) {
	header := Header{"Name", "Age"}

	assert.Contains(t, OutputName(header, 1), "single_")
	assert.Contains(t, OutputName(header, 2), "combined_")
	assert.Contains(t, OutputName(header, 10), "combined_")
}

func TestOutputName_DeterministicForEqualHeaders(t *testing.T) {
	a := Header{"Name", "Age", "City"}
	b := Header{"Name", "Age", "City"}

	assert.Equal(t, OutputName(a, 2), OutputName(b, 2))
}

func TestOutputName_OrderSensitive(t *testing.T) {
	a := Header{"Name", "Age", "City"}
	b := Header{"City", "Age", "Name"}

	assert.NotEqual(t, OutputName(a, 1), OutputName(b, 1))
}

func TestOutputName_DistinguishesHeaders(t *testing.T) {
	assert.NotEqual(t,
		OutputName(Header{"Name", "Age"}, 1),
		OutputName(Header{"Name", "Age", "City"}, 1),
	)
}

func TestHashHeader_BoundarySensitive(t *testing.T) {
	// The same concatenated bytes split differently must hash differently
	assert.NotEqual(t,
		hashHeader(Header{"ab", "c"}),
		hashHeader(Header{"a", "bc"}),
	)
	assert.NotEqual(t,
		hashHeader(Header{"ab"}),
		hashHeader(Header{"a", "b"}),
	)
}
