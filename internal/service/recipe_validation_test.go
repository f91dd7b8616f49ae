package service

import (
	"testing"

	"kulina-go/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWriteRequest() *dto.RecipeWriteRequest {
	return &dto.RecipeWriteRequest{
		Name:        "红烧肉",
		Text:        "做法描述",
		CookingTime: 60,
		Ingredients: []dto.RecipeIngredientInput{
			{ID: 1, Amount: 500},
		},
	}
}

func TestValidateRecipeWrite_Valid(t *testing.T) {
	assert.Empty(t, ValidateRecipeWrite(validWriteRequest()))
}

func TestValidateRecipeWrite_CookingTime(t *testing.T) {
	tests := []struct {
		name        string
		cookingTime int
		wantErr     bool
	}{
		{"零", 0, true},
		{"负数", -5, true},
		{"下界", 1, false},
		{"上界", 1440, false},
		{"超上界", 1441, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validWriteRequest()
			req.CookingTime = tt.cookingTime

			errs := ValidateRecipeWrite(req)
			if tt.wantErr {
				require.NotEmpty(t, errs)
				assert.Equal(t, "cooking_time", errs[0].Field)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidateRecipeWrite_Amount(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		wantErr bool
	}{
		{"零", 0, true},
		{"下界", 1, false},
		{"上界", 2147483647, false},
		{"超上界", 2147483648, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validWriteRequest()
			req.Ingredients[0].Amount = tt.amount

			errs := ValidateRecipeWrite(req)
			if tt.wantErr {
				require.NotEmpty(t, errs)
				assert.Equal(t, "ingredients", errs[0].Field)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidateRecipeWrite_EmptyIngredients(t *testing.T) {
	req := validWriteRequest()
	req.Ingredients = nil

	errs := ValidateRecipeWrite(req)
	require.NotEmpty(t, errs)
	assert.Equal(t, "ingredients", errs[0].Field)
}

func TestValidateRecipeWrite_DuplicateIngredient(t *testing.T) {
	req := validWriteRequest()
	req.Ingredients = []dto.RecipeIngredientInput{
		{ID: 1, Amount: 100},
		{ID: 1, Amount: 200},
	}

	errs := ValidateRecipeWrite(req)
	require.NotEmpty(t, errs)
	assert.Equal(t, "ingredients", errs[0].Field)
}

// 多处不合法时逐字段收集，不在第一个错误处停下
func TestValidateRecipeWrite_CollectsAllErrors(t *testing.T) {
	req := validWriteRequest()
	req.CookingTime = 0
	req.Ingredients = []dto.RecipeIngredientInput{
		{ID: 1, Amount: 0},
		{ID: 2, Amount: 100},
	}

	errs := ValidateRecipeWrite(req)
	assert.Len(t, errs, 2)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "cooking_time", Message: "太小"},
		{Field: "ingredients", Message: "为空"},
	}
	assert.Equal(t, "cooking_time: 太小; ingredients: 为空", errs.Error())
}
