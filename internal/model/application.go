package model

import "time"

// Application status values. Only StatusPending is ever written by this
// service; the remaining states exist for reviewers working directly on the
// data and for future tooling.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Application records a user's submission against a specific job. At most
// one application may exist per (job, applicant) pair; the `applications`
// table enforces this with a unique compound index.
//
// Fields:
//  ID             – primary key identifier.
//  JobID          – target job.
//  ApplicantID    – account that applied.
//  FullName       – applicant's full name.
//  Email          – contact email.
//  ResumeURL      – URL or file path of the resume.
//  CoverLetter    – optional cover letter text.
//  AdditionalInfo – optional free-form notes.
//  Status         – application state, always "pending" on creation.
//  AppliedAt      – submission timestamp.
type Application struct {
	ID             uint64    `json:"id"`
	JobID          uint64    `json:"job_id"`
	ApplicantID    uint64    `json:"applicant_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	ResumeURL      string    `json:"resume_url"`
	CoverLetter    string    `json:"cover_letter"`
	AdditionalInfo string    `json:"additional_info"`
	Status         string    `json:"status"`
	AppliedAt      time.Time `json:"applied_at"`
}
