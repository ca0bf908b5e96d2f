package rsrcengine

import (
	"sort"
	"testing"
)

func TestOsType_Construction(t *testing.T) {
	tests := []struct {
		name string
		tag  OsType
		want [4]byte
	}{
		{"from string", NewOsType("STR#"), [4]byte{'S', 'T', 'R', '#'}},
		{"from u32", OsTypeFromU32(0x76657273), [4]byte{'v', 'e', 'r', 's'}},
		{"bad length string", NewOsType("toolong"), [4]byte{}},
		{"all byte values legal", OsTypeFromU32(0xfffefd00), [4]byte{0xff, 0xfe, 0xfd, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tag.Bytes() != tt.want {
				t.Errorf("got %v, want %v", tt.tag.Bytes(), tt.want)
			}
		})
	}
}

func TestOsType_String(t *testing.T) {
	if got := NewOsType("vers").String(); got != "vers" {
		t.Errorf("String() = %q, want %q", got, "vers")
	}
	if got := OsTypeFromU32(0x01622020).String(); got != "�b  " {
		t.Errorf("String() = %q, want replacement for non-printable byte", got)
	}
}

func TestOsType_RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x53545223, 0xffffffff} {
		if got := OsTypeFromU32(v).U32(); got != v {
			t.Errorf("round trip of %#x = %#x", v, got)
		}
	}
}

func TestResourceId_Equality(t *testing.T) {
	a := NewResourceId("STR#", 128)
	b := ResourceId{Type: NewOsType("STR#"), Num: 128}
	if a != b {
		t.Error("structurally equal ids must compare equal")
	}
	if a == NewResourceId("STR#", 129) {
		t.Error("different numbers must not compare equal")
	}
	if a == NewResourceId("STR ", 128) {
		t.Error("different tags must not compare equal")
	}
}

func TestResourceId_MapKey(t *testing.T) {
	m := map[ResourceId]int{}
	m[NewResourceId("vers", 1)] = 1
	m[NewResourceId("vers", 2)] = 2
	m[NewResourceId("vers", 1)] = 3
	if len(m) != 2 {
		t.Errorf("len = %d, want 2", len(m))
	}
	if m[NewResourceId("vers", 1)] != 3 {
		t.Error("same id must address the same entry")
	}
}

func TestResourceId_Ordering(t *testing.T) {
	ids := []ResourceId{
		NewResourceId("vers", 1),
		NewResourceId("STR#", 200),
		NewResourceId("STR#", -3),
		NewResourceId("STR ", 0),
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	want := []ResourceId{
		NewResourceId("STR ", 0),
		NewResourceId("STR#", -3),
		NewResourceId("STR#", 200),
		NewResourceId("vers", 1),
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order[%d] = %v, want %v", i, ids[i], want[i])
		}
	}
}

func TestResourceId_String(t *testing.T) {
	if got := NewResourceId("STR#", 128).String(); got != "STR#(128)" {
		t.Errorf("String() = %q", got)
	}
}
