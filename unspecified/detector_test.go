package unspecified

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/unspecified/vector"
)

func newLogical(t *testing.T, values []vector.Logical, attrs *vector.Attributes, object bool) *vector.Vector {
	t.Helper()
	v := vector.NewLogical(values...)
	require.NoError(t, v.SetAttributes(attrs))
	require.NoError(t, v.SetObject(object))
	return v
}

func TestDetector_Classify(t *testing.T) {
	reg := NewRegistry()
	reg.Initialize()
	foreign := NewRegistry()
	foreign.Initialize()

	na3 := []vector.Logical{vector.NA, vector.NA, vector.NA}
	sentinel, err := NewFactory(reg).New(3)
	require.NoError(t, err)
	foreignSentinel, err := NewFactory(foreign).New(3)
	require.NoError(t, err)

	integerWithTag := vector.NewInteger(int32(vector.NA))
	require.NoError(t, integerWithTag.SetAttributes(reg.Tag()))

	testCases := []struct {
		description string
		input       vector.Value
		expect      Verdict
	}{
		{
			description: "factory sentinel",
			input:       sentinel,
			expect:      Verdict{Sentinel: true, Tier: TierIdentity},
		},
		{
			description: "canonical empty",
			input:       reg.Empty(),
			expect:      Verdict{Sentinel: true, Tier: TierIdentity},
		},
		{
			description: "nil value",
			input:       nil,
			expect:      Verdict{Tier: TierType},
		},
		{
			description: "nil vector pointer",
			input:       (*vector.Vector)(nil),
			expect:      Verdict{Tier: TierType},
		},
		{
			description: "integer carrying the tag",
			input:       integerWithTag,
			expect:      Verdict{Tier: TierType},
		},
		{
			description: "double",
			input:       vector.NewDouble(0, 0),
			expect:      Verdict{Tier: TierType},
		},
		{
			description: "character",
			input:       vector.NewCharacter("NA"),
			expect:      Verdict{Tier: TierType},
		},
		{
			description: "sentinel from another registry",
			input:       foreignSentinel,
			expect:      Verdict{Sentinel: true, Tier: TierClass},
		},
		{
			description: "class name among several",
			input:       newLogical(t, na3, vector.NewAttributes(vector.WithClass("wrapper", ClassName)), true),
			expect:      Verdict{Sentinel: true, Tier: TierClass},
		},
		{
			description: "class name with a value",
			input:       newLogical(t, []vector.Logical{vector.NA, vector.True}, vector.NewAttributes(vector.WithClass(ClassName)), true),
			expect:      Verdict{Tier: TierClass},
		},
		{
			description: "class name on empty",
			input:       newLogical(t, nil, vector.NewAttributes(vector.WithClass(ClassName)), true),
			expect:      Verdict{Sentinel: true, Tier: TierClass},
		},
		{
			description: "other classified type of NA",
			input:       newLogical(t, na3, vector.NewAttributes(vector.WithClass("factor")), true),
			expect:      Verdict{Tier: TierObject},
		},
		{
			description: "matrix of NA",
			input:       newLogical(t, []vector.Logical{vector.NA, vector.NA, vector.NA, vector.NA}, vector.NewAttributes(vector.WithDim(2, 2)), false),
			expect:      Verdict{Tier: TierDim},
		},
		{
			description: "names only fall through to scan",
			input:       newLogical(t, []vector.Logical{vector.NA, vector.NA}, vector.NewAttributes(vector.WithNames("a", "b")), false),
			expect:      Verdict{Sentinel: true, Tier: TierScan},
		},
		{
			description: "names only with value",
			input:       newLogical(t, []vector.Logical{vector.NA, vector.False}, vector.NewAttributes(vector.WithNames("a", "b")), false),
			expect:      Verdict{Tier: TierScan},
		},
		{
			description: "plain all NA",
			input:       vector.NewLogicalN(4, vector.NA),
			expect:      Verdict{Sentinel: true, Tier: TierScan},
		},
		{
			description: "plain single NA",
			input:       vector.NewLogical(vector.NA),
			expect:      Verdict{Sentinel: true, Tier: TierScan},
		},
		{
			description: "plain empty",
			input:       vector.NewLogical(),
			expect:      Verdict{Tier: TierEmpty},
		},
		{
			description: "plain with TRUE at the end",
			input:       vector.NewLogical(vector.NA, vector.NA, vector.True),
			expect:      Verdict{Tier: TierScan},
		},
		{
			description: "plain with FALSE first",
			input:       vector.NewLogical(vector.False, vector.NA),
			expect:      Verdict{Tier: TierScan},
		},
	}

	detector := NewDetector(reg)
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			got := detector.Classify(testCase.input)
			assert.Equal(t, testCase.expect, got, "tier %s", got.Tier)
			assert.Equal(t, testCase.expect.Sentinel, detector.Is(testCase.input))
		})
	}
}

func TestDetector_EveryLengthIsSentinel(t *testing.T) {
	reg := NewRegistry()
	reg.Initialize()
	factory, detector := NewFactory(reg), NewDetector(reg)

	for n := 0; n <= 64; n++ {
		out, err := factory.New(n)
		require.NoError(t, err)
		assert.True(t, detector.Is(out), "n=%d", n)
	}
}

func TestDetector_NonNAElementRejected(t *testing.T) {
	reg := NewRegistry()
	reg.Initialize()
	detector := NewDetector(reg)

	for n := 1; n <= 8; n++ {
		for pos := 0; pos < n; pos++ {
			v := vector.NewLogicalN(n, vector.NA)
			require.NoError(t, v.SetLogical(pos, vector.True))
			assert.False(t, detector.Is(v), "n=%d pos=%d", n, pos)
		}
	}
}

func TestDetector_DecodedSentinel(t *testing.T) {
	reg := NewRegistry()
	reg.Initialize()
	sentinel, err := NewFactory(reg).New(4)
	require.NoError(t, err)

	data, err := vector.Encode(sentinel)
	require.NoError(t, err)
	decoded, err := vector.Decode(data)
	require.NoError(t, err)

	assert.NotSame(t, reg.Tag(), decoded.Attributes())
	assert.Equal(t, Verdict{Sentinel: true, Tier: TierClass}, NewDetector(reg).Classify(decoded))
}

// column is a Value implemented outside the vector package, as a table
// conversion pipeline would hold it.
type column struct {
	kind   vector.Kind
	values []vector.Logical
	attrs  *vector.Attributes
	object bool
}

func (c *column) Kind() vector.Kind { return c.kind }
func (c *column) Len() int { return len(c.values) }
func (c *column) Attributes() *vector.Attributes { return c.attrs }
func (c *column) IsObject() bool { return c.object }
func (c *column) Logicals() []vector.Logical { return c.values }

func TestDetector_ForeignValue(t *testing.T) {
	Initialize()

	assert.True(t, Is(&column{kind: vector.KindLogical, values: []vector.Logical{vector.NA}}))
	assert.True(t, Is(&column{kind: vector.KindLogical, attrs: Tag(), object: true}))
	assert.False(t, Is(&column{kind: vector.KindInteger, attrs: Tag()}))
	assert.Equal(t, TierClass, Classify(&column{
		kind:  vector.KindLogical,
		attrs: vector.NewAttributes(vector.WithClass(ClassName)),
	}).Tier)
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "identity", TierIdentity.String())
	assert.Equal(t, "scan", TierScan.String())
	assert.Equal(t, "unknown", Tier(0).String())
	assert.Equal(t, "unknown", Tier(200).String())
}

func BenchmarkDetector_Identity(b *testing.B) {
	Initialize()
	sentinel, _ := New(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Is(sentinel)
	}
}

func BenchmarkDetector_Scan(b *testing.B) {
	Initialize()
	plain := vector.NewLogicalN(1024, vector.NA)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Is(plain)
	}
}
