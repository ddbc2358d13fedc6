package metadata

// Summary dokümanın kullanıcıya gösterilecek projeksiyonudur. Boş string
// "tag yok" demektir; GPSPresent ise her zaman setlenir.
type Summary struct {
	CameraMake  string
	CameraModel string
	Software    string
	DateTime    string
	Lens        string
	GPSPresent  bool
}

// Summarize dokümandan önizleme ve isimlendirme için kullanılan küçük alan
// setini çıkarır. Byte değerleri yalnızca burada, toleranslı şekilde metne
// çevrilir. Tarih önceliği: Primary DateTime, yoksa Exif DateTimeOriginal.
func Summarize(doc *Document) Summary {
	s := Summary{GPSPresent: len(doc.GPS) > 0}

	if v, ok := doc.Primary[TagMake]; ok {
		s.CameraMake = v.Text()
	}
	if v, ok := doc.Primary[TagModel]; ok {
		s.CameraModel = v.Text()
	}
	if v, ok := doc.Primary[TagSoftware]; ok {
		s.Software = v.Text()
	}
	if v, ok := doc.Primary[TagDateTime]; ok {
		s.DateTime = v.Text()
	} else if v, ok := doc.Exif[TagDateTimeOriginal]; ok {
		s.DateTime = v.Text()
	}
	if v, ok := doc.Exif[TagLensModel]; ok {
		s.Lens = v.Text()
	}

	return s
}

// Camera make + model'i tek satırda birleştirir (önizleme tablosu için).
func (s Summary) Camera() string {
	switch {
	case s.CameraMake == "":
		return s.CameraModel
	case s.CameraModel == "":
		return s.CameraMake
	}
	return s.CameraMake + " " + s.CameraModel
}
