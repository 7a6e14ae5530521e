package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVideogameCreate() *VideogameCollabCreate {
	return &VideogameCollabCreate{
		Videogame:     "PixelQuest",
		MakeupBrand:   "GlowCo",
		CollabDate:    "2024-05-20",
		SalesIncrease: "10%",
	}
}

func TestVideogameCreate_Valid(t *testing.T) {
	collab, err := validVideogameCreate().Validate()

	require.NoError(t, err)
	assert.Equal(t, "PixelQuest", collab.Videogame)
	assert.Equal(t, "GlowCo", collab.MakeupBrand)
	assert.Equal(t, "2024-05-20", collab.CollabDate.String())
	assert.Equal(t, "10%", collab.SalesIncrease)
}

func TestVideogameCreate_NameTooLong(t *testing.T) {
	payload := validVideogameCreate()
	for i := 0; i < 6; i++ {
		payload.Videogame += "0123456789"
	}

	_, err := payload.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "videogame", verr.Field)
}

func TestVideogameCreate_SalesIncreasePattern(t *testing.T) {
	payload := validVideogameCreate()
	payload.SalesIncrease = "10.0%"

	_, err := payload.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "videogame_sales_increase", verr.Field)
}

func TestVideogameUpdate_BlankFieldsMeanAbsent(t *testing.T) {
	patch, err := (&VideogameCollabUpdate{MakeupBrand: ""}).Validate()

	require.NoError(t, err)
	assert.Equal(t, &VideogameCollabPatch{}, patch)
}

func TestVideogameApply_OnlyProvidedFieldsChange(t *testing.T) {
	collab, err := validVideogameCreate().Validate()
	require.NoError(t, err)

	collab.Apply(&VideogameCollabPatch{SalesIncrease: "25%"})

	assert.Equal(t, "PixelQuest", collab.Videogame)
	assert.Equal(t, "GlowCo", collab.MakeupBrand)
	assert.Equal(t, "25%", collab.SalesIncrease)
}
