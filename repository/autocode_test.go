package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailingNumber(t *testing.T) {
	n, ok := TrailingNumber("KODE-007")
	require.True(t, ok)
	assert.Equal(t, 7, n)

	n, ok = TrailingNumber("SUP123")
	require.True(t, ok)
	assert.Equal(t, 123, n)

	_, ok = TrailingNumber("KODE-")
	assert.False(t, ok)

	_, ok = TrailingNumber("")
	assert.False(t, ok)
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "KODE-001", FormatCode("KODE-", 3, 1))
	assert.Equal(t, "SUP042", FormatCode("SUP", 3, 42))
	// Lebar bertambah sendiri setelah melewati pad
	assert.Equal(t, "KODE-1000", FormatCode("KODE-", 3, 1000))
}

func TestMaxSuffix(t *testing.T) {
	assert.Equal(t, 0, MaxSuffix(nil))
	assert.Equal(t, 2, MaxSuffix([]string{"KODE-001", "KODE-002"}))
	// Numerik, bukan leksikografis: KODE-1000 > KODE-999
	assert.Equal(t, 1000, MaxSuffix([]string{"KODE-999", "KODE-1000"}))
	// Kode tanpa digit diabaikan
	assert.Equal(t, 5, MaxSuffix([]string{"KODE-", "KODE-005"}))
}

func TestUrutanKodeBerikutnya(t *testing.T) {
	// KODE-001, KODE-002 => berikutnya KODE-003
	next := MaxSuffix([]string{"KODE-001", "KODE-002"}) + 1
	assert.Equal(t, "KODE-003", FormatCode("KODE-", 3, next))

	// Koleksi kosong => mulai dari 001
	next = MaxSuffix(nil) + 1
	assert.Equal(t, "KODE-001", FormatCode("KODE-", 3, next))

	// Setelah KODE-999 tidak mundur ke KODE-100
	next = MaxSuffix([]string{"KODE-998", "KODE-999"}) + 1
	assert.Equal(t, "KODE-1000", FormatCode("KODE-", 3, next))
}

func TestAutocodes_DaftarLengkap(t *testing.T) {
	for _, jenis := range []string{"barang", "supplier", "customer", "invoice", "sales"} {
		def, ok := Autocodes[jenis]
		require.True(t, ok, jenis)
		assert.NotEmpty(t, def.Prefix)
		assert.NotEmpty(t, def.Field)
		assert.Equal(t, 3, def.Pad)
	}
	assert.Equal(t, "INV-", Autocodes["invoice"].Prefix)
	assert.Equal(t, "SL-", Autocodes["sales"].Prefix)
}
