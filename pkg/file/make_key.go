package file

import "strings"

// MakeKey batch arşivinin storage anahtarını üretir.
func MakeKey(batchID, filename string) string {
	cleanBatchID := strings.TrimPrefix(batchID, "batch-")
	return cleanBatchID + "_" + filename
}
