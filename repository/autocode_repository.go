package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bakery-api/config"
)

func counterCol() *mongo.Collection { return config.CounterCollection }

// AutocodeDef mengikat satu prefix ke koleksi dan field kodenya.
type AutocodeDef struct {
	Prefix string
	Field  string
	Col    func() *mongo.Collection
	Pad    int
}

// Autocodes adalah daftar tetap sumber nomor urut; tidak ada dispatch
// per-string ke koleksi di luar daftar ini.
var Autocodes = map[string]AutocodeDef{
	"barang":   {Prefix: "KODE-", Field: "kode_barang", Col: barangCol, Pad: 3},
	"supplier": {Prefix: "SUP", Field: "kode_supplier", Col: supplierCol, Pad: 3},
	"customer": {Prefix: "CUS", Field: "kode_customer", Col: customerCol, Pad: 3},
	"invoice":  {Prefix: "INV-", Field: "nomor_faktur", Col: pembelianCol, Pad: 3},
	"sales":    {Prefix: "SL-", Field: "nomor_penjualan", Col: penjualanCol, Pad: 3},
}

var trailingDigits = regexp.MustCompile(`(\d+)$`)

// TrailingNumber mengambil deretan digit di ujung string.
func TrailingNumber(s string) (int, bool) {
	m := trailingDigits.FindString(s)
	if m == "" {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(m, "%d", &n); err != nil {
		return 0, false
	}
	return n, true
}

// FormatCode menghasilkan prefix + nomor urut zero-padded; lebar bertambah
// sendiri jika nomor melewati pad.
func FormatCode(prefix string, pad, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, pad, n)
}

// MaxSuffix mencari suffix numerik terbesar di antara kode yang ada; 0 jika
// belum ada. Perbandingan numerik, bukan leksikografis, sehingga urutan tidak
// mundur saat jumlah digit melewati pad.
func MaxSuffix(codes []string) int {
	max := 0
	for _, c := range codes {
		if n, ok := TrailingNumber(c); ok && n > max {
			max = n
		}
	}
	return max
}

func scanMaxSuffix(ctx context.Context, def AutocodeDef) (int, error) {
	filter := bson.M{def.Field: bson.M{"$regex": "^" + regexp.QuoteMeta(def.Prefix)}}
	opts := options.Find().SetProjection(bson.M{def.Field: 1})
	cur, err := def.Col().Find(ctx, filter, opts)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)
	var codes []string
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return 0, err
		}
		if v, ok := doc[def.Field].(string); ok {
			codes = append(codes, v)
		}
	}
	return MaxSuffix(codes), nil
}

// NextCode mengembalikan kode berikutnya untuk jenis autocode terdaftar.
// Counter per prefix di-seed sekali dari suffix numerik terbesar kode yang
// sudah ada, lalu naik monoton lewat $inc atomik.
func NextCode(jenis string) (string, error) {
	def, ok := Autocodes[jenis]
	if !ok {
		return "", fmt.Errorf("jenis autocode tidak dikenal: %s", jenis)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := counterCol().FindOne(ctx, bson.M{"_id": def.Prefix}).Err(); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return "", err
		}
		seed, err := scanMaxSuffix(ctx, def)
		if err != nil {
			return "", err
		}
		// Race saat dua request seed bersamaan: duplicate key diabaikan.
		if _, err := counterCol().InsertOne(ctx, bson.M{"_id": def.Prefix, "seq": seed}); err != nil && !mongo.IsDuplicateKeyError(err) {
			return "", err
		}
	}

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := counterCol().FindOneAndUpdate(ctx,
		bson.M{"_id": def.Prefix},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return "", err
	}
	return FormatCode(def.Prefix, def.Pad, int(doc.Seq)), nil
}

// InitializeCounters menyemai seluruh counter saat startup agar request
// pertama tidak menanggung scan koleksi.
func InitializeCounters() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, def := range Autocodes {
		if err := counterCol().FindOne(ctx, bson.M{"_id": def.Prefix}).Err(); err == nil {
			continue
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		seed, err := scanMaxSuffix(ctx, def)
		if err != nil {
			return err
		}
		if _, err := counterCol().InsertOne(ctx, bson.M{"_id": def.Prefix, "seq": seed}); err != nil && !mongo.IsDuplicateKeyError(err) {
			return err
		}
	}
	return nil
}
