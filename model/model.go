// Package model holds the hospital entities and, next to each, the
// data-access declarations its service hands to the generic engines: cursor
// descriptor, business-identifier prefix and search spec. The engines know
// nothing about these shapes; everything entity-specific lives here.
package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Doctor is a practicing physician. RegistrationNo is the allocated business
// identifier shown to staff; ID is the store's primary key and never reused.
type Doctor struct {
	bun.BaseModel `bun:"table:doctors"`

	ID             int64     `bun:"id,pk,autoincrement"`
	RegistrationNo string    `bun:"registration_no,notnull,unique"`
	FullName       string    `bun:"full_name,notnull"`
	Specialization string    `bun:"specialization"`
	DepartmentID   int64     `bun:"department_id"`
	Phone          string    `bun:"phone"`
	Status         string    `bun:"status,notnull"`
	CreatedAt      time.Time `bun:"created_at,notnull"`
}

type Nurse struct {
	bun.BaseModel `bun:"table:nurses"`

	ID             int64     `bun:"id,pk,autoincrement"`
	RegistrationNo string    `bun:"registration_no,notnull,unique"`
	FullName       string    `bun:"full_name,notnull"`
	DepartmentID   int64     `bun:"department_id"`
	Shift          string    `bun:"shift"`
	Status         string    `bun:"status,notnull"`
	CreatedAt      time.Time `bun:"created_at,notnull"`
}

type Patient struct {
	bun.BaseModel `bun:"table:patients"`

	ID                int64     `bun:"id,pk,autoincrement"`
	HospitalPatientID string    `bun:"hospital_patient_id,notnull,unique"`
	FullName          string    `bun:"full_name,notnull"`
	Gender            string    `bun:"gender"`
	DateOfBirth       time.Time `bun:"date_of_birth"`
	Phone             string    `bun:"phone"`
	Address           string    `bun:"address"`
	Status            string    `bun:"status,notnull"`
	CreatedAt         time.Time `bun:"created_at,notnull"`
}

// Admission ties a patient to a ward stay. RecordUID is a stable external
// reference for documents; RegistrationNo is the allocated admission number.
type Admission struct {
	bun.BaseModel `bun:"table:admissions"`

	ID             int64      `bun:"id,pk,autoincrement"`
	RegistrationNo string     `bun:"registration_no,notnull,unique"`
	RecordUID      string     `bun:"record_uid,notnull"`
	PatientID      int64      `bun:"patient_id,notnull"`
	DoctorID       int64      `bun:"doctor_id,notnull"`
	Ward           string     `bun:"ward"`
	Status         string     `bun:"status,notnull"`
	AdmittedAt     time.Time  `bun:"admitted_at,notnull"`
	DischargedAt   *time.Time `bun:"discharged_at"`
}

type Bed struct {
	bun.BaseModel `bun:"table:beds"`

	ID     int64  `bun:"id,pk,autoincrement"`
	Number string `bun:"number,notnull"`
	Ward   string `bun:"ward,notnull"`
	Status string `bun:"status,notnull"`
}

type Department struct {
	bun.BaseModel `bun:"table:departments"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull"`
	Head string `bun:"head"`
}

type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID          int64     `bun:"id,pk,autoincrement"`
	PatientID   int64     `bun:"patient_id,notnull"`
	DoctorID    int64     `bun:"doctor_id,notnull"`
	ScheduledAt time.Time `bun:"scheduled_at,notnull"`
	Status      string    `bun:"status,notnull"`
}

type BedAssignment struct {
	bun.BaseModel `bun:"table:bed_assignments"`

	ID          int64      `bun:"id,pk,autoincrement"`
	BedID       int64      `bun:"bed_id,notnull"`
	AdmissionID int64      `bun:"admission_id,notnull"`
	AssignedAt  time.Time  `bun:"assigned_at,notnull"`
	ReleasedAt  *time.Time `bun:"released_at"`
}

type Prescription struct {
	bun.BaseModel `bun:"table:prescriptions"`

	ID          int64     `bun:"id,pk,autoincrement"`
	AdmissionID int64     `bun:"admission_id,notnull"`
	PatientID   int64     `bun:"patient_id,notnull"`
	DoctorID    int64     `bun:"doctor_id,notnull"`
	Notes       string    `bun:"notes"`
	IssuedAt    time.Time `bun:"issued_at,notnull"`
}

// Bill amounts are integral cents; money never rides a float.
type Bill struct {
	bun.BaseModel `bun:"table:bills"`

	ID          int64     `bun:"id,pk,autoincrement"`
	AdmissionID int64     `bun:"admission_id,notnull"`
	Amount      int64     `bun:"amount,notnull"`
	Status      string    `bun:"status,notnull"`
	IssuedAt    time.Time `bun:"issued_at,notnull"`
}

type MoneyReceipt struct {
	bun.BaseModel `bun:"table:money_receipts"`

	ID         int64     `bun:"id,pk,autoincrement"`
	ReceiptUID string    `bun:"receipt_uid,notnull"`
	BillID     int64     `bun:"bill_id,notnull"`
	Amount     int64     `bun:"amount,notnull"`
	Method     string    `bun:"method"`
	ReceivedAt time.Time `bun:"received_at,notnull"`
}
