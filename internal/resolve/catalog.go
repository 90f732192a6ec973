package resolve

// CatalogEntry is one selectable field source in the operator-facing catalog:
// a form field identifier (or COMPUTED pseudo-entry) with its display label.
type CatalogEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FieldCatalog lists every field source an operator can map a placeholder
// to. The entries mirror the government form modules this tool serves.
func FieldCatalog() []CatalogEntry {
	return []CatalogEntry{
		{ID: "entry_nama", Label: "Nama Syarikat"},
		{ID: "entry_rujukan", Label: "Rujukan"},
		{ID: "entry_rujukan_syarikat", Label: "Rujukan Syarikat"},
		{ID: "entry_tarikh", Label: "Tarikh"},
		{ID: "entry_islam", Label: "Tarikh Islam"},
		{ID: "entry_alamat1", Label: "Alamat Baris 1"},
		{ID: "entry_alamat2", Label: "Alamat Baris 2"},
		{ID: "entry_alamat3", Label: "Alamat Baris 3"},
		{ID: "combo_pegawai", Label: "Nama Pegawai"},
		{ID: "combo_process", Label: "Proses"},
		{ID: "combo_jenis", Label: "Jenis Barang"},
		{ID: "combo_pengecualian", Label: "Pengecualian"},
		{ID: "entry_amount", Label: "Amaun/Sebab"},
		{ID: "entry_pemusnahan_mula", Label: "Tarikh Mula"},
		{ID: "entry_pemusnahan_tamat", Label: "Tarikh Tamat"},
		{ID: "entry_tempoh", Label: "Tempoh"},
		{ID: "var_sst_adam", Label: "Jenis SST/ADAM"},
		{ID: "COMPUTED:alamat_full", Label: "Alamat Penuh"},
		{ID: "COMPUTED:rujukan_full", Label: "Rujukan Penuh (with prefix)"},
		{ID: "COMPUTED:tarikh_malay", Label: "Tarikh Format Melayu"},
	}
}
