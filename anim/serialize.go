package anim

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Serialized layout, little-endian, no magic and no version tag - an exact
// byte contract with existing scene saves:
//
//	int32   slot count
//	per slot:
//	  uint8   auto_advance (0/1)
//	  int32   entity raw index
//	  float32 time
//	  uint8   free (0/1)
//	  int32   clip path byte length, then the raw bytes (0 = no clip)
const (
	maxSerializedSlots = 1 << 20
	maxClipPathLen     = 4096
)

// Serialize writes the whole table, free slots included, in slot order.
func (s *AnimationScene) Serialize(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(s.slots))); err != nil {
		return fmt.Errorf("animation serialize: count: %w", err)
	}
	for i := range s.slots {
		slot := &s.slots[i]
		path := ""
		if slot.clip != nil {
			path = slot.clip.Path()
		}
		if err := writeSlot(w, slot.autoAdvance, slot.entity.Index, slot.time, slot.free, path); err != nil {
			return fmt.Errorf("animation serialize: slot %d: %w", i, err)
		}
	}
	return nil
}

func writeSlot(w io.Writer, auto bool, entity int32, time float32, free bool, path string) error {
	if err := binary.Write(w, binary.LittleEndian, auto); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, entity); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, time); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, free); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(path))); err != nil {
		return err
	}
	_, err := w.Write([]byte(path))
	return err
}

// Deserialize replaces the table with the serialized one. The table is
// resized to exactly the stored count - free slots are materialized too.
// Entities rebind to the current universe, renderable bindings re-resolve
// by querying the renderable owner directly (no notification round trip),
// clips are re-requested by path through the resource manager, and each
// live slot re-registers as a component with its index preserved. Malformed
// input fails fast; on error the table may be partially rebuilt.
func (s *AnimationScene) Deserialize(r io.Reader) error {
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("animation deserialize: count: %w", err)
	}
	if count < 0 || count > maxSerializedSlots {
		return fmt.Errorf("animation deserialize: slot count %d out of range", count)
	}

	for i := range s.slots {
		s.resources.Release(s.slots[i].clip)
	}
	s.slots = make([]animable, count)
	s.byEntity.Clear()

	for i := int32(0); i < count; i++ {
		slot := &s.slots[i]
		if err := binary.Read(r, binary.LittleEndian, &slot.autoAdvance); err != nil {
			return fmt.Errorf("animation deserialize: slot %d: auto: %w", i, err)
		}
		var entityIndex int32
		if err := binary.Read(r, binary.LittleEndian, &entityIndex); err != nil {
			return fmt.Errorf("animation deserialize: slot %d: entity: %w", i, err)
		}
		slot.entity = s.universe.Rebind(entityIndex)
		slot.renderable = s.renderables.Renderable(slot.entity)
		if err := binary.Read(r, binary.LittleEndian, &slot.time); err != nil {
			return fmt.Errorf("animation deserialize: slot %d: time: %w", i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &slot.free); err != nil {
			return fmt.Errorf("animation deserialize: slot %d: free: %w", i, err)
		}
		path, err := readPath(r)
		if err != nil {
			return fmt.Errorf("animation deserialize: slot %d: path: %w", i, err)
		}
		if path != "" {
			slot.clip = s.resources.Request(ResourceAnimation, path)
		}
		if !slot.free {
			s.byEntity.Put(entityIndex, int(i))
			s.universe.AddComponent(slot.entity, KindAnimable, s, int(i), slot.gen)
		}
	}
	return nil
}

func readPath(r io.Reader) (string, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	if n < 0 || n > maxClipPathLen {
		return "", fmt.Errorf("path length %d out of range", n)
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
