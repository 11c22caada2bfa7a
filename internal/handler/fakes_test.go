package handler

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rocgym/job-board/internal/model"
	"github.com/rocgym/job-board/internal/repository"
	"github.com/rocgym/job-board/internal/utils"
)

// In-memory store fakes. They implement the same store interfaces the
// MySQL repositories satisfy, including the sentinel errors handlers
// branch on, so handler behavior can be exercised without a database.

type fakeAccounts struct {
	mu     sync.Mutex
	nextID uint64
	byID   map[uint64]model.Account
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byID: map[uint64]model.Account{}}
}

func (f *fakeAccounts) Create(_ context.Context, email, password, role string, cost int) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byID {
		if a.Email == email { // exact, case-sensitive
			return 0, repository.ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	f.nextID++
	f.byID[f.nextID] = model.Account{
		ID:           f.nextID,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	return f.nextID, nil
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return model.Account{}, repository.ErrAccountNotFound
}

func (f *fakeAccounts) GetByID(_ context.Context, id uint64) (model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return model.Account{}, repository.ErrAccountNotFound
	}
	return a, nil
}

type fakeJobs struct {
	mu     sync.Mutex
	nextID uint64
	byID   map[uint64]*model.Job
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{byID: map[uint64]*model.Job{}}
}

func (f *fakeJobs) Create(_ context.Context, j *model.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	j.ID = f.nextID
	j.Views = 0
	j.DatePosted = time.Now().UTC()
	cp := *j
	f.byID[j.ID] = &cp
	return nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uint64) (*model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobs) IncrementViewsAndGet(_ context.Context, id uint64) (*model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrJobNotFound
	}
	j.Views++
	cp := *j
	return &cp, nil
}

func (f *fakeJobs) List(_ context.Context, flt repository.JobFilter) ([]*model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*model.Job{}
	for id := uint64(1); id <= f.nextID; id++ {
		j, ok := f.byID[id]
		if !ok {
			continue
		}
		if flt.Title != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(flt.Title)) {
			continue
		}
		if flt.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(flt.Location)) {
			continue
		}
		if flt.WorkType != "" && j.WorkType != flt.WorkType {
			continue
		}
		cp := *j
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeJobs) Update(_ context.Context, id uint64, changes map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.byID[id]
	if !ok {
		return repository.ErrJobNotFound
	}
	for col, val := range changes {
		switch col {
		case "company_name":
			j.CompanyName = val.(string)
		case "title":
			j.Title = val.(string)
		case "description":
			j.Description = val.(string)
		case "location":
			j.Location = val.(string)
		case "work_type":
			j.WorkType = val.(string)
		case "salary_range":
			j.SalaryRange = val.(string)
		case "requirements":
			j.Requirements = val.(string)
		case "updated_by":
			v := val.(uint64)
			j.UpdatedBy = &v
		case "updated_at":
			t := val.(time.Time)
			j.UpdatedAt = &t
		}
	}
	return nil
}

func (f *fakeJobs) Delete(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrJobNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeJobs) IDsByOwner(_ context.Context, ownerID uint64) ([]uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []uint64
	for id := uint64(1); id <= f.nextID; id++ {
		if j, ok := f.byID[id]; ok && j.PostedBy == ownerID {
			out = append(out, id)
		}
	}
	return out, nil
}

type fakeApplications struct {
	mu     sync.Mutex
	nextID uint64
	apps   []*model.Application
}

func newFakeApplications() *fakeApplications { return &fakeApplications{} }

func (f *fakeApplications) Create(_ context.Context, a *model.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, x := range f.apps {
		if x.JobID == a.JobID && x.ApplicantID == a.ApplicantID {
			return repository.ErrDuplicateApplication
		}
	}
	f.nextID++
	a.ID = f.nextID
	a.Status = model.StatusPending
	a.AppliedAt = time.Now().UTC()
	cp := *a
	f.apps = append(f.apps, &cp)
	return nil
}

func (f *fakeApplications) Exists(_ context.Context, jobID, applicantID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, x := range f.apps {
		if x.JobID == jobID && x.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplications) ListByJob(_ context.Context, jobID uint64) ([]*model.Application, error) {
	return f.filter(func(a *model.Application) bool { return a.JobID == jobID }), nil
}

func (f *fakeApplications) ListByApplicant(_ context.Context, applicantID uint64) ([]*model.Application, error) {
	return f.filter(func(a *model.Application) bool { return a.ApplicantID == applicantID }), nil
}

func (f *fakeApplications) ListAll(context.Context) ([]*model.Application, error) {
	return f.filter(func(*model.Application) bool { return true }), nil
}

func (f *fakeApplications) ListByJobIDs(_ context.Context, jobIDs []uint64) ([]*model.Application, error) {
	in := map[uint64]bool{}
	for _, id := range jobIDs {
		in[id] = true
	}
	return f.filter(func(a *model.Application) bool { return in[a.JobID] }), nil
}

func (f *fakeApplications) filter(keep func(*model.Application) bool) []*model.Application {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*model.Application{}
	for _, a := range f.apps {
		if keep(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out
}

type fakeMembers struct {
	members []*model.Member
}

func (f *fakeMembers) ListAll(context.Context) ([]*model.Member, error) {
	if f.members == nil {
		return []*model.Member{}, nil
	}
	return f.members, nil
}
