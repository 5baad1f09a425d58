package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/repository"
)

// newTestRepo 以全套内存 Mock 组装 Repository 聚合。
// db 为 nil 时 Transaction 直接在当前聚合上执行。
func newTestRepo() *repository.Repository {
	return &repository.Repository{
		Students:    newMockStudentRepo(),
		Instructors: newMockInstructorRepo(),
		Admins:      newMockAdminRepo(),
		Contacts:    newMockContactRepo(),
		Credentials: newMockCredentialRepo(),
		Courses:     newMockCourseRepo(),
		Sections:    newMockSectionRepo(),
		Gradings:    newMockGradingRepo(),
		Timetables:  newMockTimetableRepo(),
		Records:     newMockGradeRecordRepo(),
		Enrollments: newMockEnrollmentRepo(),
		Teachings:   newMockTeachingRepo(),
		Settings:    newMockSettingRepo(),
	}
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Upsert(_ context.Context, student *model.Student) error {
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) List(_ context.Context, offset, limit int) ([]model.Student, int64, error) {
	var result []model.Student
	for _, s := range m.students {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// ── Mock InstructorRepository ──

type mockInstructorRepo struct {
	instructors map[string]*model.Instructor
}

func newMockInstructorRepo() *mockInstructorRepo {
	return &mockInstructorRepo{instructors: make(map[string]*model.Instructor)}
}

func (m *mockInstructorRepo) GetByID(_ context.Context, id string) (*model.Instructor, error) {
	if i, ok := m.instructors[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) Upsert(_ context.Context, instructor *model.Instructor) error {
	m.instructors[instructor.ID] = instructor
	return nil
}

func (m *mockInstructorRepo) Delete(_ context.Context, id string) error {
	delete(m.instructors, id)
	return nil
}

// ── Mock AdminRepository ──

type mockAdminRepo struct {
	admins map[string]*model.Admin
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*model.Admin)}
}

func (m *mockAdminRepo) GetByID(_ context.Context, id string) (*model.Admin, error) {
	if a, ok := m.admins[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) Upsert(_ context.Context, admin *model.Admin) error {
	m.admins[admin.ID] = admin
	return nil
}

func (m *mockAdminRepo) Delete(_ context.Context, id string) error {
	delete(m.admins, id)
	return nil
}

// ── Mock ContactRepository ──

type mockContactRepo struct {
	contacts map[string]*model.Contact
}

func newMockContactRepo() *mockContactRepo {
	return &mockContactRepo{contacts: make(map[string]*model.Contact)}
}

func (m *mockContactRepo) GetByUserID(_ context.Context, userID string) (*model.Contact, error) {
	if c, ok := m.contacts[userID]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContactRepo) FindByEmail(_ context.Context, email string) (*model.Contact, error) {
	for _, c := range m.contacts {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContactRepo) Upsert(_ context.Context, contact *model.Contact) error {
	m.contacts[contact.UserID] = contact
	return nil
}

func (m *mockContactRepo) Delete(_ context.Context, userID string) error {
	delete(m.contacts, userID)
	return nil
}

// ── Mock CredentialRepository ──

type mockCredentialRepo struct {
	credentials map[string]*model.Credential
}

func newMockCredentialRepo() *mockCredentialRepo {
	return &mockCredentialRepo{credentials: make(map[string]*model.Credential)}
}

func (m *mockCredentialRepo) GetByUserID(_ context.Context, userID string) (*model.Credential, error) {
	if c, ok := m.credentials[userID]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCredentialRepo) Upsert(_ context.Context, credential *model.Credential) error {
	m.credentials[credential.UserID] = credential
	return nil
}

func (m *mockCredentialRepo) Delete(_ context.Context, userID string) error {
	delete(m.credentials, userID)
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[string]*model.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course)}
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) Upsert(_ context.Context, course *model.Course) error {
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id string) error {
	delete(m.courses, id)
	return nil
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock SectionRepository ──

type mockSectionRepo struct {
	sections map[string]*model.Section
}

func newMockSectionRepo() *mockSectionRepo {
	return &mockSectionRepo{sections: make(map[string]*model.Section)}
}

func (m *mockSectionRepo) GetByID(_ context.Context, id string) (*model.Section, error) {
	if s, ok := m.sections[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSectionRepo) Upsert(_ context.Context, section *model.Section) error {
	m.sections[section.ID] = section
	return nil
}

func (m *mockSectionRepo) Delete(_ context.Context, id string) error {
	delete(m.sections, id)
	return nil
}

func (m *mockSectionRepo) ListByCourse(_ context.Context, courseID string) ([]model.Section, error) {
	var result []model.Section
	for _, s := range m.sections {
		if s.CourseID == courseID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockSectionRepo) ListBySemester(_ context.Context, semester string) ([]model.Section, error) {
	var result []model.Section
	for _, s := range m.sections {
		if s.Semester == semester {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockSectionRepo) ReserveSeat(_ context.Context, id string) (bool, error) {
	s, ok := m.sections[id]
	if !ok {
		return false, nil
	}
	if s.Contains >= s.Capacity {
		return false, nil
	}
	s.Contains++
	return true, nil
}

func (m *mockSectionRepo) ReleaseSeat(_ context.Context, id string) error {
	if s, ok := m.sections[id]; ok && s.Contains > 0 {
		s.Contains--
	}
	return nil
}

// ── Mock GradingRepository ──

type mockGradingRepo struct {
	policies map[string]*model.GradingPolicy
	slabs    map[string]*model.GradingSlabs
}

func newMockGradingRepo() *mockGradingRepo {
	return &mockGradingRepo{
		policies: make(map[string]*model.GradingPolicy),
		slabs:    make(map[string]*model.GradingSlabs),
	}
}

func (m *mockGradingRepo) GetPolicy(_ context.Context, sectionID string) (*model.GradingPolicy, error) {
	if p, ok := m.policies[sectionID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGradingRepo) UpsertPolicy(_ context.Context, policy *model.GradingPolicy) error {
	m.policies[policy.SectionID] = policy
	return nil
}

func (m *mockGradingRepo) GetSlabs(_ context.Context, sectionID string) (*model.GradingSlabs, error) {
	if s, ok := m.slabs[sectionID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGradingRepo) UpsertSlabs(_ context.Context, slabs *model.GradingSlabs) error {
	m.slabs[slabs.SectionID] = slabs
	return nil
}

func (m *mockGradingRepo) DeleteBySection(_ context.Context, sectionID string) error {
	delete(m.policies, sectionID)
	delete(m.slabs, sectionID)
	return nil
}

// ── Mock TimetableRepository ──

type mockTimetableRepo struct {
	slots map[string][]model.TimetableSlot
}

func newMockTimetableRepo() *mockTimetableRepo {
	return &mockTimetableRepo{slots: make(map[string][]model.TimetableSlot)}
}

func (m *mockTimetableRepo) ListBySection(_ context.Context, sectionID string) ([]model.TimetableSlot, error) {
	return m.slots[sectionID], nil
}

func (m *mockTimetableRepo) ListBySections(_ context.Context, sectionIDs []string) ([]model.TimetableSlot, error) {
	var result []model.TimetableSlot
	for _, id := range sectionIDs {
		result = append(result, m.slots[id]...)
	}
	return result, nil
}

func (m *mockTimetableRepo) Replace(_ context.Context, sectionID string, slots []model.TimetableSlot) error {
	for i := range slots {
		slots[i].SectionID = sectionID
		slots[i].Position = i
	}
	m.slots[sectionID] = slots
	return nil
}

func (m *mockTimetableRepo) DeleteBySection(_ context.Context, sectionID string) error {
	delete(m.slots, sectionID)
	return nil
}

// ── Mock GradeRecordRepository ──

type mockGradeRecordRepo struct {
	records map[string]*model.GradeRecord
}

func newMockGradeRecordRepo() *mockGradeRecordRepo {
	return &mockGradeRecordRepo{records: make(map[string]*model.GradeRecord)}
}

func recordKey(studentID, sectionID string) string {
	return studentID + "|" + sectionID
}

func (m *mockGradeRecordRepo) Get(_ context.Context, studentID, sectionID string) (*model.GradeRecord, error) {
	if r, ok := m.records[recordKey(studentID, sectionID)]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGradeRecordRepo) Upsert(_ context.Context, record *model.GradeRecord) error {
	m.records[recordKey(record.StudentID, record.SectionID)] = record
	return nil
}

func (m *mockGradeRecordRepo) Delete(_ context.Context, studentID, sectionID string) error {
	delete(m.records, recordKey(studentID, sectionID))
	return nil
}

func (m *mockGradeRecordRepo) ListBySection(_ context.Context, sectionID string) ([]model.GradeRecord, error) {
	var result []model.GradeRecord
	for _, r := range m.records {
		if r.SectionID == sectionID {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StudentID < result[j].StudentID })
	return result, nil
}

func (m *mockGradeRecordRepo) Stats(_ context.Context, sectionID string) (*repository.SectionStats, error) {
	stats := &repository.SectionStats{}
	sum := 0.0
	for _, r := range m.records {
		if r.SectionID != sectionID {
			continue
		}
		total := r.Total()
		if stats.Count == 0 {
			stats.Highest, stats.Lowest = total, total
		} else {
			if total > stats.Highest {
				stats.Highest = total
			}
			if total < stats.Lowest {
				stats.Lowest = total
			}
		}
		sum += total
		stats.Count++
	}
	if stats.Count > 0 {
		stats.Average = sum / float64(stats.Count)
	}
	return stats, nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments map[string]*model.Enrollment
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{enrollments: make(map[string]*model.Enrollment)}
}

func (m *mockEnrollmentRepo) Get(_ context.Context, studentID, sectionID string) (*model.Enrollment, error) {
	if e, ok := m.enrollments[recordKey(studentID, sectionID)]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) Create(_ context.Context, enrollment *model.Enrollment) error {
	m.enrollments[recordKey(enrollment.StudentID, enrollment.SectionID)] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) Upsert(_ context.Context, enrollment *model.Enrollment) error {
	m.enrollments[recordKey(enrollment.StudentID, enrollment.SectionID)] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) Delete(_ context.Context, studentID, sectionID string) error {
	delete(m.enrollments, recordKey(studentID, sectionID))
	return nil
}

func (m *mockEnrollmentRepo) ListByStudent(_ context.Context, studentID string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SectionID < result[j].SectionID })
	return result, nil
}

func (m *mockEnrollmentRepo) ListByStudentSemester(_ context.Context, studentID, semester string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.Semester == semester {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SectionID < result[j].SectionID })
	return result, nil
}

func (m *mockEnrollmentRepo) ListBySection(_ context.Context, sectionID string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.SectionID == sectionID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StudentID < result[j].StudentID })
	return result, nil
}

// ── Mock TeachingRepository ──

type mockTeachingRepo struct {
	assignments map[string]*model.TeachingAssignment
}

func newMockTeachingRepo() *mockTeachingRepo {
	return &mockTeachingRepo{assignments: make(map[string]*model.TeachingAssignment)}
}

func (m *mockTeachingRepo) Exists(_ context.Context, instructorID, sectionID string) (bool, error) {
	_, ok := m.assignments[recordKey(instructorID, sectionID)]
	return ok, nil
}

func (m *mockTeachingRepo) Upsert(_ context.Context, assignment *model.TeachingAssignment) error {
	m.assignments[recordKey(assignment.InstructorID, assignment.SectionID)] = assignment
	return nil
}

func (m *mockTeachingRepo) Delete(_ context.Context, instructorID, sectionID string) error {
	delete(m.assignments, recordKey(instructorID, sectionID))
	return nil
}

func (m *mockTeachingRepo) ListByInstructor(_ context.Context, instructorID string) ([]model.TeachingAssignment, error) {
	var result []model.TeachingAssignment
	for _, a := range m.assignments {
		if a.InstructorID == instructorID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SectionID < result[j].SectionID })
	return result, nil
}

func (m *mockTeachingRepo) ListBySection(_ context.Context, sectionID string) ([]model.TeachingAssignment, error) {
	var result []model.TeachingAssignment
	for _, a := range m.assignments {
		if a.SectionID == sectionID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].InstructorID < result[j].InstructorID })
	return result, nil
}

// ── Mock SettingRepository ──

type mockSettingRepo struct {
	settings map[string]*model.Setting
}

func newMockSettingRepo() *mockSettingRepo {
	return &mockSettingRepo{settings: make(map[string]*model.Setting)}
}

func (m *mockSettingRepo) Get(_ context.Context, key string) (*model.Setting, error) {
	if s, ok := m.settings[key]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSettingRepo) Upsert(_ context.Context, setting *model.Setting) error {
	m.settings[setting.Key] = setting
	return nil
}

func (m *mockSettingRepo) Delete(_ context.Context, key string) error {
	delete(m.settings, key)
	return nil
}

func (m *mockSettingRepo) List(_ context.Context) ([]model.Setting, error) {
	var result []model.Setting
	for _, s := range m.settings {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}
