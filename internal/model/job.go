package model

import "time"

// DefaultCompanyName is used for postings that do not name a company.
const DefaultCompanyName = "ROC Gym"

// Job work type values are free-form strings such as "Full-time" or
// "Part-time"; they are matched exactly when filtering listings.

// Job represents a job posting as stored in the `jobs` table. The account
// that created the posting (PostedBy) owns it; ownership never changes.
// Views counts individual detail fetches and is bumped atomically by the
// repository on every successful fetch-by-id.
//
// Fields:
//  ID          – primary key identifier.
//  CompanyName – hiring company, defaults to DefaultCompanyName.
//  Title       – posting title.
//  Description – full description text.
//  Location    – free-form location.
//  WorkType    – employment type, matched exactly in listing filters.
//  SalaryRange – optional salary information.
//  Requirements– optional requirements text.
//  Views       – number of detail fetches, post-increment value returned.
//  PostedBy    – owning account id, immutable once set.
//  DatePosted  – creation timestamp.
//  UpdatedBy   – account that last modified the posting (nil if never).
//  UpdatedAt   – time of last modification (nil if never).
type Job struct {
	ID           uint64     `json:"id"`
	CompanyName  string     `json:"company_name"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	WorkType     string     `json:"work_type"`
	SalaryRange  string     `json:"salary_range"`
	Requirements string     `json:"requirements"`
	Views        uint64     `json:"views"`
	PostedBy     uint64     `json:"posted_by"`
	DatePosted   time.Time  `json:"date_posted"`
	UpdatedBy    *uint64    `json:"updated_by,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
