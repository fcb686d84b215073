package permission

import (
	"testing"

	"github.com/blues/vds/internal/model"
)

func TestResolveRoles(t *testing.T) {
	tests := []struct {
		name  string
		types []model.StructureType
		want  RoleSet
	}{
		{
			name:  "empty set has no capability",
			types: nil,
			want:  RoleSet{},
		},
		{
			name:  "ptf only is financial partner",
			types: []model.StructureType{model.StructurePTF},
			want:  RoleSet{IsFinancialPartner: true},
		},
		{
			name:  "host type only",
			types: []model.StructureType{model.StructureSocieteCivile},
			want:  RoleSet{IsHostStructure: true},
		},
		{
			name:  "mixed societe civile and ptf holds both roles",
			types: []model.StructureType{model.StructureSocieteCivile, model.StructurePTF},
			want:  RoleSet{IsFinancialPartner: true, IsHostStructure: true, HasMultipleRoles: true},
		},
		{
			name:  "unknown type is ignored",
			types: []model.StructureType{"ong_internationale"},
			want:  RoleSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRoles(tt.types)
			if got != tt.want {
				t.Errorf("ResolveRoles(%v) = %+v, want %+v", tt.types, got, tt.want)
			}
		})
	}
}
