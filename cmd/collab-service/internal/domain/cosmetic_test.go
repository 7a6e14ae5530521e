package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCosmeticCreate() *CosmeticCollabCreate {
	return &CosmeticCollabCreate{
		MakeupBrand:   "GlowCo",
		Videogame:     "PixelQuest",
		CollabDate:    "2024-03-01",
		CollabType:    "limited edition",
		SalesIncrease: "15%",
	}
}

func TestCosmeticCreate_Valid(t *testing.T) {
	collab, err := validCosmeticCreate().Validate()

	require.NoError(t, err)
	assert.Equal(t, int64(0), collab.ID)
	assert.Equal(t, "GlowCo", collab.MakeupBrand)
	assert.Equal(t, "PixelQuest", collab.Videogame)
	assert.Equal(t, "2024-03-01", collab.CollabDate.String())
	assert.Equal(t, "limited edition", collab.CollabType)
	assert.Equal(t, "15%", collab.SalesIncrease)
}

func TestCosmeticCreate_TrimsWhitespace(t *testing.T) {
	payload := validCosmeticCreate()
	payload.MakeupBrand = "  GlowCo  "
	payload.CollabType = "\tlimited edition\n"

	collab, err := payload.Validate()

	require.NoError(t, err)
	assert.Equal(t, "GlowCo", collab.MakeupBrand)
	assert.Equal(t, "limited edition", collab.CollabType)
}

func TestCosmeticCreate_BrandTooShort(t *testing.T) {
	payload := validCosmeticCreate()
	payload.MakeupBrand = "Gl"

	_, err := payload.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "makeup_brand", verr.Field)
}

func TestCosmeticCreate_BrandOnlyWhitespace(t *testing.T) {
	// 空白在校验前被去除，剩余长度不足
	payload := validCosmeticCreate()
	payload.MakeupBrand = "   "

	_, err := payload.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "makeup_brand", verr.Field)
}

func TestCosmeticCreate_SalesIncreaseRejectsDecimals(t *testing.T) {
	// 百分比只接受整数格式
	for _, bad := range []string{"15.5%", "-15%", "+15%", "15", "%", "15 %", "abc%"} {
		payload := validCosmeticCreate()
		payload.SalesIncrease = bad

		_, err := payload.Validate()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "value %q should be rejected", bad)
		assert.Equal(t, "makeup_sales_increase", verr.Field)
	}
}

func TestCosmeticCreate_InvalidDate(t *testing.T) {
	for _, bad := range []string{"2024-13-01", "01-03-2024", "2024/03/01", "not a date", ""} {
		payload := validCosmeticCreate()
		payload.CollabDate = bad

		_, err := payload.Validate()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "value %q should be rejected", bad)
		assert.Equal(t, "collaboration_date", verr.Field)
	}
}

func TestCosmeticUpdate_BlankFieldsMeanAbsent(t *testing.T) {
	// 空字符串表示"未提供"，不报错也不清空
	payload := &CosmeticCollabUpdate{
		MakeupBrand:   "",
		Videogame:     "  ",
		SalesIncrease: "20%",
	}

	patch, err := payload.Validate()

	require.NoError(t, err)
	assert.Empty(t, patch.MakeupBrand)
	assert.Empty(t, patch.Videogame)
	assert.Nil(t, patch.CollabDate)
	assert.Equal(t, "20%", patch.SalesIncrease)
}

func TestCosmeticUpdate_EmptyPayloadIsValid(t *testing.T) {
	patch, err := (&CosmeticCollabUpdate{}).Validate()

	require.NoError(t, err)
	assert.Equal(t, &CosmeticCollabPatch{}, patch)
}

func TestCosmeticUpdate_ProvidedFieldsStillValidated(t *testing.T) {
	payload := &CosmeticCollabUpdate{SalesIncrease: "15.5%"}

	_, err := payload.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "makeup_sales_increase", verr.Field)
}

func TestCosmeticApply_OnlyProvidedFieldsChange(t *testing.T) {
	collab, err := validCosmeticCreate().Validate()
	require.NoError(t, err)
	collab.ID = 7

	newDate, err := ParseDate("2025-01-15")
	require.NoError(t, err)
	collab.Apply(&CosmeticCollabPatch{
		MakeupBrand: "ShimmerInc",
		CollabDate:  &newDate,
	})

	assert.Equal(t, int64(7), collab.ID)
	assert.Equal(t, "ShimmerInc", collab.MakeupBrand)
	assert.Equal(t, "PixelQuest", collab.Videogame)
	assert.Equal(t, "2025-01-15", collab.CollabDate.String())
	assert.Equal(t, "limited edition", collab.CollabType)
	assert.Equal(t, "15%", collab.SalesIncrease)
}

func TestCosmeticApply_EmptyPatchChangesNothing(t *testing.T) {
	collab, err := validCosmeticCreate().Validate()
	require.NoError(t, err)
	before := *collab

	collab.Apply(&CosmeticCollabPatch{})

	assert.Equal(t, before, *collab)
}
