package entity

import "testing"

func TestRoleForExperiencedRotation(t *testing.T) {
	cases := []struct {
		id   int64
		want string
	}{
		{1, "Neurosurgeon"},
		{2, "Traumatologist"},
		{3, "Cardiologist"},
		{4, "Neurosurgeon"},
		{6, "Cardiologist"},
	}
	for _, tc := range cases {
		if got := RoleFor(true, tc.id); got != tc.want {
			t.Errorf("RoleFor(true, %d) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestRoleForJuniorRotation(t *testing.T) {
	cases := []struct {
		id   int64
		want string
	}{
		{1, "Medical Assistant"},
		{2, "Resident"},
		{3, "General Practitioner"},
		{5, "Resident"},
	}
	for _, tc := range cases {
		if got := RoleFor(false, tc.id); got != tc.want {
			t.Errorf("RoleFor(false, %d) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestRoleForIsDeterministic(t *testing.T) {
	for id := int64(1); id <= 100; id++ {
		first := RoleFor(true, id)
		second := RoleFor(true, id)
		if first != second {
			t.Fatalf("RoleFor(true, %d) not deterministic: %q vs %q", id, first, second)
		}
	}
}

func TestPriorityForThresholdIsStrict(t *testing.T) {
	cases := []struct {
		age  int
		want string
	}{
		{1, PriorityLow},
		{59, PriorityLow},
		{60, PriorityLow},
		{61, PriorityHigh},
		{70, PriorityHigh},
	}
	for _, tc := range cases {
		if got := PriorityFor(tc.age); got != tc.want {
			t.Errorf("PriorityFor(%d) = %q, want %q", tc.age, got, tc.want)
		}
	}
}

func TestPatientIsUnassigned(t *testing.T) {
	p := &Patient{AssignedDoctor: UnassignedDoctor}
	if !p.IsUnassigned() {
		t.Error("patient with the unassigned marker should be unassigned")
	}
	p.AssignedDoctor = "3"
	if p.IsUnassigned() {
		t.Error("patient holding a doctor id should not be unassigned")
	}
}
