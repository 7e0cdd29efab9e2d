package models

import (
	"bytes"
	"encoding/json"
)

// Slot is one availability record as returned by the booking API.
// Its fields are not interpreted here.
type Slot = json.RawMessage

// SlotList is the ordered availability response of one run.
type SlotList []Slot

func (l SlotList) Len() int {
	return len(l)
}

func (l SlotList) Empty() bool {
	return len(l) == 0
}

// String renders the list as compact JSON.
func (l SlotList) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, s := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := json.Compact(&buf, s); err != nil {
			buf.Write(s)
		}
	}
	buf.WriteByte(']')
	return buf.String()
}
