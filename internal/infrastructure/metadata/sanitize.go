package metadata

// Sanitize politika bayraklarına göre redakte edilmiş YENİ bir doküman
// döner; girdi değişmez, böylece rapor için önce/sonra karşılaştırması
// yapılabilir.
//
//   - stripGPS: GPS bölümü komple boşaltılır (alan alan değil, top yekûn).
//   - stripSerials: tam olarak üç kimlik tag'i silinir: Exif gövde seri
//     numarası, Exif lens seri numarası, Primary kamera sahibi adı. Make,
//     model, timestamp dahil diğer her şey olduğu gibi kalır.
//
// İlgili bölüm ya da tag yoksa kural no-op'tur. İşlem idempotenttir.
func Sanitize(doc *Document, stripGPS, stripSerials bool) *Document {
	out := doc.Clone()

	if stripGPS {
		out.GPS = Section{}
	}

	if stripSerials {
		delete(out.Exif, TagBodySerialNumber)
		delete(out.Exif, TagLensSerialNumber)
		delete(out.Primary, TagCameraOwnerName)
	}

	return out
}
