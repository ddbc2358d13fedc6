package repositories

// ArchiveStorage üretilen zip arşivlerinin kalıcı tarafını soyutlar
// (local disk veya S3).
type ArchiveStorage interface {
	Save(name string, data []byte) (string, error)
	Load(name string) ([]byte, error)
	Delete(name string) error
}
