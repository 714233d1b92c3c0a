package model

import (
	"github.com/riteshgharti333/hospital-management-app-sub001/records"
)

// Business-identifier prefixes for the entities that carry one.
const (
	DoctorIDPrefix    = "DOC"
	NurseIDPrefix     = "NRS"
	PatientIDPrefix   = "PAT"
	AdmissionIDPrefix = "ADM"
)

// Descriptors: every entity pages on its primary key.

var DoctorDescriptor = records.Descriptor[*Doctor]{
	Name:         "doctor",
	CursorColumn: "id",
	PrimaryKey:   func(d *Doctor) int64 { return d.ID },
}

var NurseDescriptor = records.Descriptor[*Nurse]{
	Name:         "nurse",
	CursorColumn: "id",
	PrimaryKey:   func(n *Nurse) int64 { return n.ID },
}

var PatientDescriptor = records.Descriptor[*Patient]{
	Name:         "patient",
	CursorColumn: "id",
	PrimaryKey:   func(p *Patient) int64 { return p.ID },
}

var AdmissionDescriptor = records.Descriptor[*Admission]{
	Name:         "admission",
	CursorColumn: "id",
	PrimaryKey:   func(a *Admission) int64 { return a.ID },
}

var BedDescriptor = records.Descriptor[*Bed]{
	Name:         "bed",
	CursorColumn: "id",
	PrimaryKey:   func(b *Bed) int64 { return b.ID },
}

var AppointmentDescriptor = records.Descriptor[*Appointment]{
	Name:         "appointment",
	CursorColumn: "id",
	PrimaryKey:   func(a *Appointment) int64 { return a.ID },
}

var PrescriptionDescriptor = records.Descriptor[*Prescription]{
	Name:         "prescription",
	CursorColumn: "id",
	PrimaryKey:   func(p *Prescription) int64 { return p.ID },
}

var BillDescriptor = records.Descriptor[*Bill]{
	Name:         "bill",
	CursorColumn: "id",
	PrimaryKey:   func(b *Bill) int64 { return b.ID },
}

// Search specs. Identifier codes match exactly, names by prefix, and the
// looser containment strategy doubles as a misspelling fallback on name-like
// fields.

var DoctorSearch = records.SearchSpec{
	ExactFields:   []string{"registration_no"},
	PrefixFields:  []string{"full_name"},
	SimilarFields: []string{"full_name", "specialization"},
}

var NurseSearch = records.SearchSpec{
	ExactFields:  []string{"registration_no"},
	PrefixFields: []string{"full_name"},
}

var PatientSearch = records.SearchSpec{
	ExactFields:   []string{"hospital_patient_id"},
	PrefixFields:  []string{"full_name"},
	SimilarFields: []string{"full_name", "phone", "address"},
}

var AdmissionSearch = records.SearchSpec{
	ExactFields: []string{"registration_no"},
	Relations: []records.Relation{
		{
			Table:         "patients",
			ForeignColumn: "patient_id",
			RelatedColumn: "id",
			PrefixFields:  []string{"full_name"},
			SimilarFields: []string{"full_name"},
		},
	},
}

// PrescriptionSearch reaches through the doctor FK so staff can pull up a
// prescription knowing only who wrote it.
var PrescriptionSearch = records.SearchSpec{
	SimilarFields: []string{"notes"},
	Relations: []records.Relation{
		{
			Table:         "doctors",
			ForeignColumn: "doctor_id",
			RelatedColumn: "id",
			PrefixFields:  []string{"full_name"},
			SimilarFields: []string{"full_name"},
		},
	},
}

// Filterable field vocabularies, declared here so controllers map request
// parameters onto a fixed set instead of forwarding arbitrary column names.
var (
	DoctorFilterFields    = []string{"status", "specialization", "department_id"}
	PatientFilterFields   = []string{"status", "gender"}
	AdmissionFilterFields = []string{"status", "ward", "doctor_id", "admitted_at"}
	BillFilterFields      = []string{"status", "issued_at"}
)
