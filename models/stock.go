package models

// StockLevel adalah saldo berjalan per barang. Dibuat lazy saat mutasi
// pertama; nama_barang dan satuan diambil dari transaksi pembuatnya dan
// tidak disinkronkan ulang.
type StockLevel struct {
	KodeBarang string  `json:"kode_barang" bson:"kode_barang"`
	NamaBarang string  `json:"nama_barang" bson:"nama_barang"`
	Satuan     string  `json:"satuan" bson:"satuan"`
	Stok       float64 `json:"stok_total" bson:"stok"`
}
