package model_test

import (
	"testing"

	"github.com/riteshgharti333/hospital-management-app-sub001/model"
	"github.com/riteshgharti333/hospital-management-app-sub001/records"
)

// Descriptors and search specs are package-level declarations; a typo in one
// would otherwise surface only when the first request hits that entity.

func TestDescriptorsAreComplete(t *testing.T) {
	if err := model.DoctorDescriptor.Validate(); err != nil {
		t.Errorf("doctor: %v", err)
	}
	if err := model.NurseDescriptor.Validate(); err != nil {
		t.Errorf("nurse: %v", err)
	}
	if err := model.PatientDescriptor.Validate(); err != nil {
		t.Errorf("patient: %v", err)
	}
	if err := model.AdmissionDescriptor.Validate(); err != nil {
		t.Errorf("admission: %v", err)
	}
	if err := model.BedDescriptor.Validate(); err != nil {
		t.Errorf("bed: %v", err)
	}
	if err := model.AppointmentDescriptor.Validate(); err != nil {
		t.Errorf("appointment: %v", err)
	}
	if err := model.PrescriptionDescriptor.Validate(); err != nil {
		t.Errorf("prescription: %v", err)
	}
	if err := model.BillDescriptor.Validate(); err != nil {
		t.Errorf("bill: %v", err)
	}
}

func TestSearchSpecsAreComplete(t *testing.T) {
	specs := map[string]records.SearchSpec{
		"doctor":       model.DoctorSearch,
		"nurse":        model.NurseSearch,
		"patient":      model.PatientSearch,
		"admission":    model.AdmissionSearch,
		"prescription": model.PrescriptionSearch,
	}
	for name, spec := range specs {
		if err := spec.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestPrimaryKeyAccessorsMatchCursorColumn(t *testing.T) {
	d := &model.Doctor{ID: 7}
	if model.DoctorDescriptor.PrimaryKey(d) != 7 {
		t.Error("doctor accessor does not read the id column")
	}
	a := &model.Admission{ID: 9}
	if model.AdmissionDescriptor.PrimaryKey(a) != 9 {
		t.Error("admission accessor does not read the id column")
	}
}
