package metadata

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
)

var (
	exifHeader   = []byte("Exif\x00\x00")
	pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
)

// Decode görsel byte'larından gömülü metadata konteynerini söker.
// Her türlü parse hatasında (bozuk, eksik, hiç yok) boş doküman döner;
// metadata yardımcı veridir, görsel işlemeyi asla bloklamamalı.
func Decode(imageBytes []byte) *Document {
	raw := extractTIFF(imageBytes)
	if len(raw) == 0 {
		return NewDocument()
	}
	doc, err := decodeTIFF(raw)
	if err != nil {
		return NewDocument()
	}
	return doc
}

// extractTIFF taşıyıcı formata göre ham TIFF bloğunu bulur.
func extractTIFF(b []byte) []byte {
	switch {
	case len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8:
		return exifFromJPEG(b)
	case len(b) >= 8 && bytes.Equal(b[:8], pngSignature):
		return exifFromPNG(b)
	case len(b) >= 12 && bytes.Equal(b[:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return exifFromWebP(b)
	}
	return nil
}

func exifFromJPEG(b []byte) []byte {
	i := 2
	for i+4 <= len(b) {
		if b[i] != 0xFF {
			return nil
		}
		marker := b[i+1]
		// SOS'tan sonrası sıkıştırılmış veri, standalone marker'ların uzunluğu yok
		if marker == 0xDA || marker == 0xD9 || (marker >= 0xD0 && marker <= 0xD7) || marker == 0x01 {
			return nil
		}
		segLen := int(binary.BigEndian.Uint16(b[i+2 : i+4]))
		end := i + 2 + segLen
		if segLen < 2 || end > len(b) {
			return nil
		}
		if marker == 0xE1 && bytes.HasPrefix(b[i+4:end], exifHeader) {
			return b[i+4+len(exifHeader) : end]
		}
		i = end
	}
	return nil
}

func exifFromPNG(b []byte) []byte {
	i := 8
	for i+8 <= len(b) {
		chunkLen := int(binary.BigEndian.Uint32(b[i : i+4]))
		typ := string(b[i+4 : i+8])
		end := i + 8 + chunkLen
		if chunkLen < 0 || end+4 > len(b) {
			return nil
		}
		if typ == "eXIf" {
			return b[i+8 : end]
		}
		i = end + 4 // +4 CRC
	}
	return nil
}

func exifFromWebP(b []byte) []byte {
	i := 12
	for i+8 <= len(b) {
		fourcc := string(b[i : i+4])
		chunkLen := int(binary.LittleEndian.Uint32(b[i+4 : i+8]))
		end := i + 8 + chunkLen
		if chunkLen < 0 || end > len(b) {
			return nil
		}
		if fourcc == "EXIF" {
			data := b[i+8 : end]
			// Bazı yazıcılar chunk içine "Exif\0\0" başlığını da koyar
			data = bytes.TrimPrefix(data, exifHeader)
			return data
		}
		if chunkLen%2 == 1 {
			end++ // RIFF chunk'ları even-aligned
		}
		i = end
	}
	return nil
}

func decodeTIFF(b []byte) (*Document, error) {
	if len(b) < 8 {
		return nil, fmt.Errorf("tiff header eksik")
	}
	var order binary.ByteOrder
	switch {
	case b[0] == 'I' && b[1] == 'I':
		order = binary.LittleEndian
	case b[0] == 'M' && b[1] == 'M':
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("bilinmeyen byte order")
	}
	if order.Uint16(b[2:4]) != 42 {
		return nil, fmt.Errorf("tiff magic değeri yanlış")
	}

	doc := NewDocument()
	doc.order = order

	ifd0Off := order.Uint32(b[4:8])
	primary, pointers, err := parseIFD(b, ifd0Off, order)
	if err != nil {
		return nil, err
	}
	doc.Primary = primary

	if off, ok := pointers[tagExifIFDPointer]; ok {
		if sec, _, err := parseIFD(b, off, order); err == nil {
			doc.Exif = sec
		}
	}
	if off, ok := pointers[tagGPSIFDPointer]; ok {
		if sec, _, err := parseIFD(b, off, order); err == nil {
			doc.GPS = sec
		}
	}

	// Interop IFD taşınmıyor; dangling pointer bırakmamak için tag'i düşür.
	delete(doc.Exif, tagInteropIFDPointer)

	return doc, nil
}

// parseIFD tek bir IFD'yi okur; sub-IFD pointer tag'lerini section'a koymak
// yerine offset olarak ayrıca döner.
func parseIFD(b []byte, off uint32, order binary.ByteOrder) (Section, map[uint16]uint32, error) {
	if uint64(off)+2 > uint64(len(b)) {
		return nil, nil, fmt.Errorf("ifd offset sınır dışı")
	}
	n := int(order.Uint16(b[off : off+2]))
	entryBase := int(off) + 2
	if entryBase+n*12+4 > len(b) {
		return nil, nil, fmt.Errorf("ifd kesik")
	}

	sec := Section{}
	pointers := map[uint16]uint32{}
	for i := 0; i < n; i++ {
		e := b[entryBase+i*12 : entryBase+(i+1)*12]
		tag := order.Uint16(e[0:2])
		typ := order.Uint16(e[2:4])
		cnt := order.Uint32(e[4:8])

		size, ok := typeSizes[typ]
		if !ok {
			continue // bilinmeyen tip, girdiyi atla
		}
		total := uint64(size) * uint64(cnt)
		if total > 1<<24 {
			continue // şüpheli büyüklükte alan
		}

		var data []byte
		if total <= 4 {
			data = append([]byte{}, e[8:8+total]...)
		} else {
			valOff := order.Uint32(e[8:12])
			if uint64(valOff)+total > uint64(len(b)) {
				continue
			}
			data = append([]byte{}, b[valOff:uint64(valOff)+total]...)
		}

		if tag == tagExifIFDPointer || tag == tagGPSIFDPointer {
			if typ == typeLong && cnt == 1 {
				pointers[tag] = order.Uint32(data)
			}
			continue
		}
		sec[tag] = Value{Type: typ, Count: cnt, Data: data}
	}
	return sec, pointers, nil
}

// Encode dokümanı tek parça TIFF bloğu olarak kodlar. Sub-IFD offsetleri
// yeniden hesaplanır; boş GPS/Exif bölümleri için pointer yazılmaz.
// Yapısal olarak bozuk bir doküman için hata döner, çağıran gömmeden
// devam eder.
func Encode(doc *Document) ([]byte, error) {
	if doc == nil || doc.Empty() {
		return nil, fmt.Errorf("metadata dokümanı boş")
	}
	order := doc.ByteOrder()

	for _, sec := range []Section{doc.Primary, doc.Exif, doc.GPS} {
		for tag, v := range sec {
			size, ok := typeSizes[v.Type]
			if !ok {
				return nil, fmt.Errorf("tag 0x%04X: bilinmeyen tip %d", tag, v.Type)
			}
			if uint64(len(v.Data)) != uint64(size)*uint64(v.Count) {
				return nil, fmt.Errorf("tag 0x%04X: veri uzunluğu tutarsız", tag)
			}
		}
	}

	hasExif := len(doc.Exif) > 0
	hasGPS := len(doc.GPS) > 0

	ifdSize := func(n int) uint32 { return uint32(2 + 12*n + 4) }
	extSize := func(sec Section) uint32 {
		var t uint32
		for _, v := range sec {
			if len(v.Data) > 4 {
				t += uint32(len(v.Data))
				if len(v.Data)%2 == 1 {
					t++ // word hizalama
				}
			}
		}
		return t
	}

	n0 := len(doc.Primary)
	if hasExif {
		n0++
	}
	if hasGPS {
		n0++
	}

	ifd0ValStart := 8 + ifdSize(n0)
	exifStart := ifd0ValStart + extSize(doc.Primary)
	gpsStart := exifStart
	var exifValStart uint32
	if hasExif {
		exifValStart = exifStart + ifdSize(len(doc.Exif))
		gpsStart = exifValStart + extSize(doc.Exif)
	}
	var gpsValStart uint32
	if hasGPS {
		gpsValStart = gpsStart + ifdSize(len(doc.GPS))
	}

	ifd0 := doc.Primary.clone()
	if hasExif {
		ifd0[tagExifIFDPointer] = longValue(order, exifStart)
	}
	if hasGPS {
		ifd0[tagGPSIFDPointer] = longValue(order, gpsStart)
	}

	var buf bytes.Buffer
	if order == binary.BigEndian {
		buf.WriteString("MM")
	} else {
		buf.WriteString("II")
	}
	writeU16(&buf, order, 42)
	writeU32(&buf, order, 8)

	writeIFD(&buf, order, ifd0, ifd0ValStart)
	if hasExif {
		writeIFD(&buf, order, doc.Exif, exifValStart)
	}
	if hasGPS {
		writeIFD(&buf, order, doc.GPS, gpsValStart)
	}
	return buf.Bytes(), nil
}

func writeIFD(buf *bytes.Buffer, order binary.ByteOrder, sec Section, valStart uint32) {
	tags := make([]uint16, 0, len(sec))
	for tag := range sec {
		tags = append(tags, tag)
	}
	// TIFF girdileri artan tag sırasıyla ister; sıralama encode'u da
	// deterministik yapar
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	writeU16(buf, order, uint16(len(tags)))
	var ext bytes.Buffer
	for _, tag := range tags {
		v := sec[tag]
		writeU16(buf, order, tag)
		writeU16(buf, order, v.Type)
		writeU32(buf, order, v.Count)
		if len(v.Data) <= 4 {
			padded := make([]byte, 4)
			copy(padded, v.Data)
			buf.Write(padded)
		} else {
			writeU32(buf, order, valStart+uint32(ext.Len()))
			ext.Write(v.Data)
			if ext.Len()%2 == 1 {
				ext.WriteByte(0)
			}
		}
	}
	writeU32(buf, order, 0) // sonraki IFD yok
	buf.Write(ext.Bytes())
}

func longValue(order binary.ByteOrder, v uint32) Value {
	data := make([]byte, 4)
	order.PutUint32(data, v)
	return Value{Type: typeLong, Count: 1, Data: data}
}

func writeU16(buf *bytes.Buffer, order binary.ByteOrder, v uint16) {
	b := make([]byte, 2)
	order.PutUint16(b, v)
	buf.Write(b)
}

func writeU32(buf *bytes.Buffer, order binary.ByteOrder, v uint32) {
	b := make([]byte, 4)
	order.PutUint32(b, v)
	buf.Write(b)
}

// EmbedJPEG kodlanmış TIFF bloğunu APP1 segmenti olarak JPEG byte'larına
// gömer. Eski Exif APP1 segmentleri atılır, yeni segment SOI'den hemen
// sonra yazılır. Gömme mümkün değilse girdi aynen döner.
func EmbedJPEG(jpegBytes, tiff []byte) []byte {
	if len(jpegBytes) < 2 || jpegBytes[0] != 0xFF || jpegBytes[1] != 0xD8 {
		return jpegBytes
	}
	payload := append(append([]byte{}, exifHeader...), tiff...)
	if len(payload)+2 > 0xFFFF {
		return jpegBytes // tek segmente sığmıyor
	}

	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8})
	out.Write([]byte{0xFF, 0xE1})
	lenBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(lenBytes, uint16(len(payload)+2))
	out.Write(lenBytes)
	out.Write(payload)

	i := 2
	for i+4 <= len(jpegBytes) {
		if jpegBytes[i] != 0xFF {
			break
		}
		marker := jpegBytes[i+1]
		if marker == 0xDA || marker == 0xD9 || (marker >= 0xD0 && marker <= 0xD7) || marker == 0x01 {
			break
		}
		segLen := int(binary.BigEndian.Uint16(jpegBytes[i+2 : i+4]))
		end := i + 2 + segLen
		if segLen < 2 || end > len(jpegBytes) {
			break
		}
		if !(marker == 0xE1 && bytes.HasPrefix(jpegBytes[i+4:end], exifHeader)) {
			out.Write(jpegBytes[i:end])
		}
		i = end
	}
	out.Write(jpegBytes[i:])
	return out.Bytes()
}
