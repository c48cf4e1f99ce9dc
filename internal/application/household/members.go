package household

import (
	"context"
	"sync"
	"time"

	"github.com/hearthhq/hearth/internal/domain/member"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"go.uber.org/zap"
)

// MemberService implements the family roster use cases
type MemberService struct {
	repo   outbound.MemberRepository
	now    func() time.Time
	logger *zap.Logger

	mu sync.Mutex
}

var _ inbound.MemberService = (*MemberService)(nil)

// NewMemberService creates a new member service
func NewMemberService(repo outbound.MemberRepository, logger *zap.Logger) *MemberService {
	return &MemberService{repo: repo, now: time.Now, logger: logger.Named("member-service")}
}

// List returns the roster with ages
func (s *MemberService) List(ctx context.Context) ([]inbound.MemberDTO, error) {
	roster, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load members", err)
	}

	now := s.now()
	members := roster.Members()
	out := make([]inbound.MemberDTO, 0, len(members))
	for _, m := range members {
		out = append(out, toMemberDTO(m, now))
	}
	return out, nil
}

// Add appends a member
func (s *MemberService) Add(ctx context.Context, cmd inbound.AddMemberCommand) (*inbound.MemberDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load members", err)
	}

	added, err := roster.Add(member.Member{
		Name:      cmd.Name,
		Role:      member.Role(cmd.Role),
		Birthdate: cmd.Birthdate,
		Image:     cmd.Image,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Store(ctx, roster); err != nil {
		return nil, errors.NewStorageError("store members", err)
	}

	s.logger.Info("Family member added", zap.Int("member_id", added.ID), zap.String("initials", added.Initials))
	dto := toMemberDTO(added, s.now())
	return &dto, nil
}

// Delete removes a member. Tasks and events keep the dangling id.
func (s *MemberService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.repo.Load(ctx)
	if err != nil {
		return errors.NewStorageError("load members", err)
	}
	if err := roster.Delete(id); err != nil {
		return errors.NewMemberNotFoundError(id)
	}
	if err := s.repo.Store(ctx, roster); err != nil {
		return errors.NewStorageError("store members", err)
	}
	return nil
}

func toMemberDTO(m member.Member, now time.Time) inbound.MemberDTO {
	dto := inbound.MemberDTO{
		ID:        m.ID,
		Name:      m.Name,
		Role:      string(m.Role),
		Birthdate: m.Birthdate,
		Image:     m.Image,
		Initials:  m.Initials,
	}
	if age := m.Age(now); age >= 0 {
		dto.Age = &age
	}
	return dto
}
