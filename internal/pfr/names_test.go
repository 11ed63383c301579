package pfr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNameWithSuffixAndNickname(t *testing.T) {
	pn := testParser().ParseName("John Michael Smith Jr.", "Johnny")

	require.Equal(t, "John", pn.First)
	require.Equal(t, "Michael", pn.Middle)
	require.Equal(t, "Smith", pn.Last)
	require.Equal(t, "Jr.", pn.Suffix)
	require.Equal(t, "Johnny", pn.Nickname)
}

func TestParseNameCompoundSurname(t *testing.T) {
	// The nickname agrees with the "Van" token, so it is absorbed into
	// the last name.
	pn := testParser().ParseName("Steve Van Buren", "Steve Van Buren")

	require.Equal(t, "Steve", pn.First)
	require.Empty(t, pn.Middle)
	require.Equal(t, "Van Buren", pn.Last)
	require.Empty(t, pn.Nickname)
}

func TestParseNameCompoundSurnameDisagreement(t *testing.T) {
	// "Little" is a known surname prefix, but the nickname rendering
	// disagrees at that offset, so it stays a middle name.
	pn := testParser().ParseName("William Little John", "Billy John")

	require.Equal(t, "William", pn.First)
	require.Equal(t, "Little", pn.Middle)
	require.Equal(t, "John", pn.Last)
	require.Equal(t, "Billy", pn.Nickname)
}

func TestParseNameNicknameOnlyProfile(t *testing.T) {
	pn := testParser().ParseName("", "Night Train Lane")

	require.Equal(t, "Night", pn.First)
	require.Equal(t, "Train", pn.Middle)
	require.Equal(t, "Lane", pn.Last)
	require.Empty(t, pn.Nickname)
}

func TestParseNameSingleToken(t *testing.T) {
	pn := testParser().ParseName("Madden", "")

	require.Empty(t, pn.First)
	require.Equal(t, "Madden", pn.Last)
}

func TestParseNameStripsParenthesizedSegment(t *testing.T) {
	pn := testParser().ParseName("Walter (Sweetness) Payton", "Sweetness")

	require.Equal(t, "Walter", pn.First)
	require.Equal(t, "Payton", pn.Last)
	require.Equal(t, "Sweetness", pn.Nickname)
}

func TestParseNameSuffixDroppedFromNickname(t *testing.T) {
	pn := testParser().ParseName("Paul Brown III", "Tiny Brown III")

	require.Equal(t, "Paul", pn.First)
	require.Equal(t, "Brown", pn.Last)
	require.Equal(t, "III", pn.Suffix)
	require.Equal(t, "Tiny", pn.Nickname)
}
