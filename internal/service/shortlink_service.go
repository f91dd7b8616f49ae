package service

import (
	"errors"
	"fmt"
	"strings"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/config"
	"kulina-go/internal/repository"
	"kulina-go/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrLinkNotFound = errors.New("短链接不存在")
	// ErrCodeSpaceExhausted 短码重试耗尽
	// 62^8 的码空间下连续冲突基本不可能，出现即说明存储层异常
	ErrCodeSpaceExhausted = errors.New("短码生成重试次数耗尽")
)

type ShortLinkService struct {
	shortLinkRepo *repository.ShortLinkRepository
	recipeRepo    *repository.RecipeRepository
}

func NewShortLinkService(shortLinkRepo *repository.ShortLinkRepository, recipeRepo *repository.RecipeRepository) *ShortLinkService {
	return &ShortLinkService{shortLinkRepo: shortLinkRepo, recipeRepo: recipeRepo}
}

// GetOrCreateLink 获取菜谱的短链接，不存在则创建（幂等）
// 并发下同一菜谱的两个首次请求只会落一行：
// 输家撞上 recipe_id 唯一约束后回读并返回赢家的短码；
// 短码本身撞车则换一个码重试，重试次数有上限
func (s *ShortLinkService) GetOrCreateLink(recipeID int64) (*dto.ShortLinkData, error) {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if link, err := s.shortLinkRepo.GetByRecipeID(recipeID); err == nil {
		return s.toShortLinkData(link.RecipeID, link.Code), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cfg := config.GetShortLink()
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		code := utils.RandomShortCode(cfg.CodeLength)

		link, err := s.shortLinkRepo.Create(recipeID, code)
		if err == nil {
			return s.toShortLinkData(link.RecipeID, link.Code), nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}

		// 唯一约束冲突：先判断是不是同菜谱的并发请求赢了
		if existing, getErr := s.shortLinkRepo.GetByRecipeID(recipeID); getErr == nil {
			return s.toShortLinkData(existing.RecipeID, existing.Code), nil
		} else if !errors.Is(getErr, gorm.ErrRecordNotFound) {
			return nil, getErr
		}
		// 否则是短码被其他菜谱占用，换码重试
	}

	return nil, ErrCodeSpaceExhausted
}

// Resolve 根据短码解析菜谱 ID
func (s *ShortLinkService) Resolve(code string) (int64, error) {
	link, err := s.shortLinkRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrLinkNotFound
		}
		return 0, err
	}
	return link.RecipeID, nil
}

func (s *ShortLinkService) toShortLinkData(recipeID int64, code string) *dto.ShortLinkData {
	base := strings.TrimRight(config.GetApp().BaseURL, "/")
	return &dto.ShortLinkData{
		RecipeID:  recipeID,
		Code:      code,
		ShortLink: fmt.Sprintf("%s/s/%s", base, code),
	}
}
