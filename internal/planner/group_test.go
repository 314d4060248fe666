package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcrawl-service/internal/domain"
	"github.com/shopcrawl-service/internal/planner"
)

func TestClassifier_GroupBranches(t *testing.T) {
	cls := planner.NewClassifier(planner.DefaultBrands())

	t.Run("groups by detected brand preserving first-seen order", func(t *testing.T) {
		places := []domain.Place{
			{ID: "1", Name: "肯德基(中关村店)"},
			{ID: "2", Name: "星巴克（国贸店）"},
			{ID: "3", Name: "KFC 西单店"},
			{ID: "4", Name: "Starbucks Sanlitun"},
		}

		groups := cls.GroupBranches(places)
		require.Len(t, groups, 2)
		assert.Equal(t, "肯德基", groups[0].BrandName)
		assert.Len(t, groups[0].Branches, 2)
		assert.Equal(t, "星巴克", groups[1].BrandName)
		assert.Len(t, groups[1].Branches, 2)
	})

	t.Run("unbranded places cluster by name prefix", func(t *testing.T) {
		places := []domain.Place{
			{ID: "1", Name: "张记面馆（人民路店）"},
			{ID: "2", Name: "张记面馆分店"},
			{ID: "3", Name: "张记面馆"},
		}

		groups := cls.GroupBranches(places)
		require.Len(t, groups, 1)
		assert.Equal(t, "张记面馆", groups[0].BrandName)
		assert.Len(t, groups[0].Branches, 3)
	})

	t.Run("distinct unbranded names stay separate", func(t *testing.T) {
		places := []domain.Place{
			{ID: "1", Name: "老王烧烤"},
			{ID: "2", Name: "小李火锅"},
		}

		groups := cls.GroupBranches(places)
		assert.Len(t, groups, 2)
	})
}
