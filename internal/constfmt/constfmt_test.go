package constfmt_test

import (
	"fmt"
	"go/constant"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/descgen/internal/constfmt"
)

func str(s string) constfmt.Value { return constfmt.Value{Value: constant.MakeString(s)} }
func num(n int64) constfmt.Value  { return constfmt.Value{Value: constant.MakeInt64(n)} }
func chr(r rune) constfmt.Value {
	return constfmt.Value{Value: constant.MakeInt64(int64(r)), Rune: true}
}

func consts(m map[string]constfmt.Value) constfmt.Resolver {
	return func(name string) (constfmt.Value, error) {
		v, ok := m[name]
		if !ok {
			return constfmt.Value{}, fmt.Errorf("undefined: %s", name)
		}
		return v, nil
	}
}

func TestRenderPlain(t *testing.T) {
	got, err := constfmt.Render("Charger connected!", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Charger connected!", got)
}

func TestRenderNamedThenPositional(t *testing.T) {
	resolve := consts(map[string]constfmt.Value{"X": num(5)})
	got, err := constfmt.Render("value is {X}{}", []constfmt.Value{num(42)}, resolve)
	require.NoError(t, err)
	assert.Equal(t, "value is 542", got)
}

func TestRenderConstantAndMax(t *testing.T) {
	resolve := consts(map[string]constfmt.Value{
		"SOME_CONSTANT": num(5),
	})
	got, err := constfmt.Render(
		"the constant is {SOME_CONSTANT}, and the max u32 is {}",
		[]constfmt.Value{num(4294967295)},
		resolve,
	)
	require.NoError(t, err)
	assert.Equal(t, "the constant is 5, and the max u32 is 4294967295", got)
}

func TestRenderTable(t *testing.T) {
	resolve := consts(map[string]constfmt.Value{
		"Name":         str("descgen"),
		"math.MaxInt8": num(127),
	})

	tests := []struct {
		template string
		args     []constfmt.Value
		want     string
	}{
		{"{}-{}", []constfmt.Value{num(1), num(2)}, "1-2"},
		{"{1}{0}", []constfmt.Value{str("a"), str("b")}, "ba"},
		{"{0}{0}{}", []constfmt.Value{str("a")}, "aaa"},
		{"{{literal}}", nil, "{literal}"},
		{"{{{}}}", []constfmt.Value{num(7)}, "{7}"},
		{"{Name:?}", nil, `"descgen"`},
		{"{math.MaxInt8:x}", nil, "7f"},
		{"{:X}", []constfmt.Value{num(255)}, "FF"},
		{"{:#x}", []constfmt.Value{num(255)}, "0xff"},
		{"{:#b}", []constfmt.Value{num(5)}, "0b101"},
		{"{:o}", []constfmt.Value{num(8)}, "10"},
		{"{:#x}", []constfmt.Value{num(-255)}, "-0xff"},
		{"{:#x}", []constfmt.Value{{Value: constant.MakeInt64(-1), Bits: 8}}, "0xff"},
		{"{:b}", []constfmt.Value{{Value: constant.MakeInt64(-2), Bits: 8}}, "11111110"},
		{"{:X}", []constfmt.Value{{Value: constant.MakeInt64(-1), Bits: 64}}, "FFFFFFFFFFFFFFFF"},
		{"{}", []constfmt.Value{{Value: constant.MakeInt64(-1), Bits: 8}}, "-1"},
		{"{}", []constfmt.Value{chr('가')}, "가"},
		{"{:?}", []constfmt.Value{chr('a')}, "'a'"},
		{"{}", []constfmt.Value{{Value: constant.MakeBool(true)}}, "true"},
		{"{}", []constfmt.Value{{Value: constant.MakeFloat64(0.5)}}, "0.5"},
		{"{}", []constfmt.Value{{Value: constant.MakeFloat64(1e20)}}, "100000000000000000000"},
	}

	var got, want []string
	for _, tt := range tests {
		s, err := constfmt.Render(tt.template, tt.args, resolve)
		if err != nil {
			s = "error: " + err.Error()
		}
		got = append(got, tt.template+" => "+s)
		want = append(want, tt.template+" => "+tt.want)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderBigInt(t *testing.T) {
	big := constant.BinaryOp(constant.MakeUint64(1<<63), token.MUL, constant.MakeInt64(4))
	got, err := constfmt.Render("{} {:#x}", []constfmt.Value{{Value: big}, {Value: big}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "36893488147419103232 0x20000000000000000", got)
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		template string
		args     []constfmt.Value
		want     string
	}{
		{"{", nil, "unclosed '{' at offset 0; use {{ for a literal brace"},
		{"a}b", nil, "unmatched '}' at offset 1; use }} for a literal brace"},
		{"{}", nil, "{} at position 0 has no argument (no arguments were given)"},
		{"{} {}", []constfmt.Value{num(1)}, "{} at position 1 has no argument (there is 1 argument)"},
		{"{2}", []constfmt.Value{num(1), num(2)}, "invalid reference to positional argument 2 (there are 2 arguments)"},
		{"{}", []constfmt.Value{num(1), num(2)}, "argument 1 is never used"},
		{"no holes", []constfmt.Value{num(1)}, "argument 0 is never used"},
		{"{:>5}", []constfmt.Value{num(1)}, `unsupported format spec ":>5"`},
		{"{:e}", []constfmt.Value{{Value: constant.MakeFloat64(0.5)}}, `unsupported format spec ":e"`},
		{"{a-b}", nil, "invalid placeholder {a-b}"},
		{"{a.b.c}", nil, "invalid placeholder {a.b.c}"},
		{"{:x}", []constfmt.Value{str("s")}, `cannot format string "s" with {:x}`},
		{"{Missing}", nil, "undefined: Missing"},
	}

	resolve := consts(nil)
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			_, err := constfmt.Render(tt.template, tt.args, resolve)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestRenderNilResolver(t *testing.T) {
	_, err := constfmt.Render("{X}", nil, nil)
	assert.EqualError(t, err, "cannot resolve {X}")
}

func TestParse(t *testing.T) {
	pieces, err := constfmt.Parse("a{}b{1:#x}{Name:?}")
	require.NoError(t, err)
	require.Len(t, pieces, 5)

	assert.Equal(t, "a", pieces[0].Text)
	assert.False(t, pieces[0].IsHole())

	assert.True(t, pieces[1].IsHole())
	assert.Equal(t, -1, pieces[1].Index)
	assert.Equal(t, "", pieces[1].Name)

	assert.Equal(t, "b", pieces[2].Text)

	assert.Equal(t, 1, pieces[3].Index)
	assert.Equal(t, constfmt.Spec{Alt: true, Verb: 'x'}, pieces[3].Spec)

	assert.Equal(t, "Name", pieces[4].Name)
	assert.Equal(t, byte('?'), pieces[4].Spec.Verb)
}
