package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchFilter_QueryKosong(t *testing.T) {
	assert.Equal(t, bson.M{}, SearchFilter("", "nama_barang", "kode_barang"))
}

func TestSearchFilter_CaseInsensitiveOrAtasFields(t *testing.T) {
	filter := SearchFilter("kue", "nama_barang", "kode_barang")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	first := or[0].(bson.M)["nama_barang"].(bson.M)
	assert.Equal(t, "kue", first["$regex"])
	assert.Equal(t, "i", first["$options"])

	second := or[1].(bson.M)["kode_barang"].(bson.M)
	assert.Equal(t, "kue", second["$regex"])
	assert.Equal(t, "i", second["$options"])
}
