package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"github.com/edsrzf/mmap-go"
)

// =====================
// Бинарный образ словаря
// =====================
//
// Формат (little-endian):
//   magic   uint32
//   words   uint32
//   на каждое слово:  len uint16, байты UTF-8, prob uint8
//   bigrams uint32
//   на каждую пару:   lenPrev uint16, байты, lenNext uint16, байты, prob uint8

const binaryMagic uint32 = 0x31544753 // "SGT1"

// SaveBinary writes the dictionary as a compact binary image.
func SaveBinary(d *Dict, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания файла: %v", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	words := d.Words()
	sort.Slice(words, func(i, j int) bool { return words[i].Word < words[j].Word })

	var u32 [4]byte
	binary.LittleEndian.PutUint32(u32[:], binaryMagic)
	w.Write(u32[:])
	binary.LittleEndian.PutUint32(u32[:], uint32(len(words)))
	w.Write(u32[:])
	for _, e := range words {
		if err := writeString(w, e.Word); err != nil {
			return err
		}
		w.WriteByte(e.Prob)
	}

	bigrams := d.Bigrams()
	sort.Slice(bigrams, func(i, j int) bool {
		if bigrams[i].Prev != bigrams[j].Prev {
			return bigrams[i].Prev < bigrams[j].Prev
		}
		return bigrams[i].Next < bigrams[j].Next
	})
	binary.LittleEndian.PutUint32(u32[:], uint32(len(bigrams)))
	w.Write(u32[:])
	for _, b := range bigrams {
		if err := writeString(w, b.Prev); err != nil {
			return err
		}
		if err := writeString(w, b.Next); err != nil {
			return err
		}
		w.WriteByte(b.Prob)
	}
	return w.Flush()
}

func writeString(w *bufio.Writer, s string) error {
	if len(s) > 0xffff {
		return fmt.Errorf("слишком длинное слово: %d байт", len(s))
	}
	var u16 [2]byte
	binary.LittleEndian.PutUint16(u16[:], uint16(len(s)))
	w.Write(u16[:])
	_, err := w.WriteString(s)
	return err
}

// LoadBinary maps the image read-only and builds the trie straight from the
// mapped bytes, without an intermediate copy of the file.
func LoadBinary(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия образа: %v", err)
	}
	defer f.Close()
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("ошибка mmap: %v", err)
	}
	defer m.Unmap()

	r := &imageReader{buf: m}
	magic, err := r.uint32()
	if err != nil {
		return nil, err
	}
	if magic != binaryMagic {
		return nil, fmt.Errorf("неизвестный формат словаря: %#x", magic)
	}

	d := New()
	words, err := r.uint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < words; i++ {
		word, err := r.str()
		if err != nil {
			return nil, err
		}
		prob, err := r.byte()
		if err != nil {
			return nil, err
		}
		d.Insert(word, prob)
	}

	bigrams, err := r.uint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < bigrams; i++ {
		prev, err := r.str()
		if err != nil {
			return nil, err
		}
		next, err := r.str()
		if err != nil {
			return nil, err
		}
		prob, err := r.byte()
		if err != nil {
			return nil, err
		}
		d.AddBigram(prev, next, prob)
	}
	return d, nil
}

type imageReader struct {
	buf []byte
	off int
}

func (r *imageReader) take(n int) ([]byte, error) {
	if r.off+n > len(r.buf) {
		return nil, fmt.Errorf("обрезанный образ словаря: нужно %d байт на смещении %d", n, r.off)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *imageReader) uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *imageReader) byte() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *imageReader) str() (string, error) {
	b, err := r.take(2)
	if err != nil {
		return "", err
	}
	n := int(binary.LittleEndian.Uint16(b))
	s, err := r.take(n)
	if err != nil {
		return "", err
	}
	// копия: mmap живёт только до конца LoadBinary
	return string(s), nil
}
