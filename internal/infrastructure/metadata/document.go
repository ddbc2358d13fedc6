package metadata

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"
)

// TIFF veri tipleri
const (
	typeByte      = 1
	typeASCII     = 2
	typeShort     = 3
	typeLong      = 4
	typeRational  = 5
	typeSByte     = 6
	typeUndefined = 7
	typeSShort    = 8
	typeSLong     = 9
	typeSRational = 10
	typeFloat     = 11
	typeDouble    = 12
)

var typeSizes = map[uint16]uint32{
	typeByte:      1,
	typeASCII:     1,
	typeShort:     2,
	typeLong:      4,
	typeRational:  8,
	typeSByte:     1,
	typeUndefined: 1,
	typeSShort:    2,
	typeSLong:     4,
	typeSRational: 8,
	typeFloat:     4,
	typeDouble:    8,
}

// Bilinen tag ID'leri (sanitizer/summarizer'ın dokunduğu alanlar).
const (
	TagMake             uint16 = 0x010F // Primary
	TagModel            uint16 = 0x0110 // Primary
	TagOrientation      uint16 = 0x0112 // Primary
	TagSoftware         uint16 = 0x0131 // Primary
	TagDateTime         uint16 = 0x0132 // Primary
	TagCameraOwnerName  uint16 = 0xA430 // Primary
	TagDateTimeOriginal uint16 = 0x9003 // Exif
	TagBodySerialNumber uint16 = 0xA431 // Exif
	TagLensModel        uint16 = 0xA434 // Exif
	TagLensSerialNumber uint16 = 0xA435 // Exif

	tagExifIFDPointer    uint16 = 0x8769
	tagGPSIFDPointer     uint16 = 0x8825
	tagInteropIFDPointer uint16 = 0xA005
)

// Value ham bir TIFF alanıdır: tip + eleman sayısı + byte'lar.
// Byte'lar dokümanın byte order'ında tutulur; tanınmayan tag'ler bu sayede
// tekrar kodlanırken aynen korunur. Byte dizilerinin metne çevrilmesi
// codec'te değil, yalnızca summarizer sınırında yapılır.
type Value struct {
	Type  uint16
	Count uint32
	Data  []byte
}

func (v Value) clone() Value {
	data := make([]byte, len(v.Data))
	copy(data, v.Data)
	return Value{Type: v.Type, Count: v.Count, Data: data}
}

// Uint SHORT/LONG tipli bir alanın ilk elemanını okur.
func (v Value) Uint(order binary.ByteOrder) (uint32, bool) {
	switch v.Type {
	case typeShort:
		if len(v.Data) < 2 {
			return 0, false
		}
		return uint32(order.Uint16(v.Data[:2])), true
	case typeLong:
		if len(v.Data) < 4 {
			return 0, false
		}
		return order.Uint32(v.Data[:4]), true
	}
	return 0, false
}

// Text ASCII/UNDEFINED/BYTE içeriği toleranslı şekilde metne çevirir:
// NUL'lar atılır, geçersiz UTF-8 replacement karakteriyle değiştirilir.
func (v Value) Text() string {
	s := strings.TrimRight(string(v.Data), "\x00")
	s = strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, s)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "�")
	}
	return strings.TrimSpace(s)
}

// NewASCIIValue NUL ile sonlandırılmış ASCII alanı üretir.
func NewASCIIValue(s string) Value {
	data := append([]byte(s), 0)
	return Value{Type: typeASCII, Count: uint32(len(data)), Data: data}
}

// NewShortValue tek elemanlı SHORT alanı üretir (little-endian).
func NewShortValue(u uint16) Value {
	data := make([]byte, 2)
	binary.LittleEndian.PutUint16(data, u)
	return Value{Type: typeShort, Count: 1, Data: data}
}

// NewRationalValue tek elemanlı RATIONAL alanı üretir (little-endian).
func NewRationalValue(num, den uint32) Value {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[:4], num)
	binary.LittleEndian.PutUint32(data[4:], den)
	return Value{Type: typeRational, Count: 1, Data: data}
}

// Section bir IFD'nin tag -> value eşlemesidir.
type Section map[uint16]Value

func (s Section) clone() Section {
	out := make(Section, len(s))
	for tag, v := range s {
		out[tag] = v.clone()
	}
	return out
}

// Document tek bir görselden sökülen metadata konteyneridir: üç bölüm
// (Primary/IFD0, Exif, GPS) ve orijinal byte order.
type Document struct {
	order   binary.ByteOrder
	Primary Section
	Exif    Section
	GPS     Section
}

// NewDocument boş, little-endian bir doküman döner.
func NewDocument() *Document {
	return &Document{
		order:   binary.LittleEndian,
		Primary: Section{},
		Exif:    Section{},
		GPS:     Section{},
	}
}

func (d *Document) ByteOrder() binary.ByteOrder {
	if d.order == nil {
		return binary.LittleEndian
	}
	return d.order
}

func (d *Document) Empty() bool {
	return len(d.Primary) == 0 && len(d.Exif) == 0 && len(d.GPS) == 0
}

// Clone derin kopya döner; sanitizer orijinali asla değiştirmez.
func (d *Document) Clone() *Document {
	return &Document{
		order:   d.order,
		Primary: d.Primary.clone(),
		Exif:    d.Exif.clone(),
		GPS:     d.GPS.clone(),
	}
}

// Orientation Primary bölümündeki orientation değerini döner, yoksa 0.
func (d *Document) Orientation() int {
	v, ok := d.Primary[TagOrientation]
	if !ok {
		return 0
	}
	u, ok := v.Uint(d.ByteOrder())
	if !ok {
		return 0
	}
	return int(u)
}

// DropOrientation transpose sonrası orientation tag'ini düşürür;
// piksel verisi zaten döndürüldüğü için tag artık yanıltıcı olur.
func (d *Document) DropOrientation() {
	delete(d.Primary, TagOrientation)
}
