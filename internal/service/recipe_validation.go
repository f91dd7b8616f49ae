package service

import (
	"fmt"
	"strings"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/model"
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors 一次请求中收集到的全部字段错误
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(parts, "; ")
}

// ValidateRecipeWrite 校验创建/更新菜谱的输入
// 规则：烹饪时长在 [1, 1440]，每项用量在 [1, 2147483647]，
// 至少一种食材，且同一食材不可出现两次
func ValidateRecipeWrite(req *dto.RecipeWriteRequest) ValidationErrors {
	var errs ValidationErrors

	if req.CookingTime < model.CookingTimeMin {
		errs = append(errs, FieldError{
			Field:   "cooking_time",
			Message: fmt.Sprintf("烹饪时长不能小于 %d 分钟", model.CookingTimeMin),
		})
	} else if req.CookingTime > model.CookingTimeMax {
		errs = append(errs, FieldError{
			Field:   "cooking_time",
			Message: fmt.Sprintf("烹饪时长不能超过 %d 分钟", model.CookingTimeMax),
		})
	}

	if len(req.Ingredients) == 0 {
		errs = append(errs, FieldError{
			Field:   "ingredients",
			Message: "至少需要一种食材",
		})
		return errs
	}

	seen := make(map[int64]bool, len(req.Ingredients))
	for _, item := range req.Ingredients {
		if seen[item.ID] {
			errs = append(errs, FieldError{
				Field:   "ingredients",
				Message: fmt.Sprintf("食材 %d 重复出现", item.ID),
			})
			continue
		}
		seen[item.ID] = true

		if item.Amount < model.IngredientAmountMin {
			errs = append(errs, FieldError{
				Field:   "ingredients",
				Message: fmt.Sprintf("食材 %d 的用量不能小于 %d", item.ID, model.IngredientAmountMin),
			})
		} else if item.Amount > model.IngredientAmountMax {
			errs = append(errs, FieldError{
				Field:   "ingredients",
				Message: fmt.Sprintf("食材 %d 的用量不能超过 %d", item.ID, model.IngredientAmountMax),
			})
		}
	}

	return errs
}
