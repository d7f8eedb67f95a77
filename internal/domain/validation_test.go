package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsValidRecord(t *testing.T) {
	t.Parallel()

	errs := DefaultCatalog().Validate(CandidateRecord{Name: "Gandalf", Class: ClassMage, Role: RoleRangedDPS}, NewConstraintState())
	assert.Empty(t, errs)
}

func TestValidateSingleRuleFailures(t *testing.T) {
	t.Parallel()

	seeded := SeedConstraintState([]Character{
		{Name: "Gandalf", Class: ClassMage, Role: RoleRangedDPS},
		{Name: "Tank1", Class: ClassPaladin, Role: RoleTank},
		{Name: "Tank2", Class: ClassWarrior, Role: RoleTank},
		{Name: "Heal1", Class: ClassDruid, Role: RoleHeal},
	})

	tests := []struct {
		name        string
		record      CandidateRecord
		wantKind    ValidationKind
		wantMessage string
	}{
		{
			name:        "lowercase name",
			record:      CandidateRecord{Name: "gandalf", Class: ClassMage, Role: RoleRangedDPS},
			wantKind:    KindNameNotCapitalized,
			wantMessage: "Name must start with a capital letter.",
		},
		{
			name:        "empty name",
			record:      CandidateRecord{Name: "", Class: ClassMage, Role: RoleRangedDPS},
			wantKind:    KindNameNotCapitalized,
			wantMessage: "Name must start with a capital letter.",
		},
		{
			name:        "digit first",
			record:      CandidateRecord{Name: "9lives", Class: ClassMage, Role: RoleRangedDPS},
			wantKind:    KindNameNotCapitalized,
			wantMessage: "Name must start with a capital letter.",
		},
		{
			name:        "duplicate name",
			record:      CandidateRecord{Name: "Gandalf", Class: ClassWarlock, Role: RoleRangedDPS},
			wantKind:    KindDuplicateName,
			wantMessage: "Names cannot be the same: Gandalf",
		},
		{
			name:        "incompatible pair",
			record:      CandidateRecord{Name: "Uther", Class: ClassPaladin, Role: RoleRangedDPS},
			wantKind:    KindIncompatibleClassRole,
			wantMessage: "Paladin cannot be a Ranged_Dps.",
		},
		{
			name:        "third tank",
			record:      CandidateRecord{Name: "Tank3", Class: ClassPaladin, Role: RoleTank},
			wantKind:    KindRoleCapacityExceeded,
			wantMessage: "There cannot be more than 2 Tanks.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := DefaultCatalog().Validate(tt.record, seeded)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantKind, errs[0].Kind)
			assert.Equal(t, tt.wantMessage, errs[0].Message)
		})
	}
}

func TestValidateSecondHealerStillFits(t *testing.T) {
	t.Parallel()

	state := SeedConstraintState([]Character{{Name: "Heal1", Class: ClassDruid, Role: RoleHeal}})

	errs := DefaultCatalog().Validate(CandidateRecord{Name: "Heal2", Class: ClassShaman, Role: RoleHeal}, state)
	assert.Empty(t, errs)

	state.Claim(CandidateRecord{Name: "Heal2", Class: ClassShaman, Role: RoleHeal})
	errs = DefaultCatalog().Validate(CandidateRecord{Name: "Heal3", Class: ClassPaladin, Role: RoleHeal}, state)
	require.Len(t, errs, 1)
	assert.Equal(t, "There cannot be more than 2 Healers.", errs[0].Message)
}

func TestValidateAccumulatesEveryFailure(t *testing.T) {
	t.Parallel()

	state := SeedConstraintState([]Character{
		{Name: "tank", Class: ClassWarrior, Role: RoleTank},
		{Name: "Tank2", Class: ClassWarrior, Role: RoleTank},
	})

	errs := DefaultCatalog().Validate(CandidateRecord{Name: "tank", Class: ClassMage, Role: RoleTank}, state)

	require.Len(t, errs, 4)
	assert.Equal(t, []ValidationKind{
		KindNameNotCapitalized,
		KindDuplicateName,
		KindIncompatibleClassRole,
		KindRoleCapacityExceeded,
	}, []ValidationKind{errs[0].Kind, errs[1].Kind, errs[2].Kind, errs[3].Kind})
	assert.True(t, errs.Has(KindDuplicateName))
	assert.False(t, errs.Has(KindIncompleteRecord))
	assert.Equal(t,
		"Name must start with a capital letter.; Names cannot be the same: tank; Mage cannot be a Tank.; There cannot be more than 2 Tanks.",
		errs.Error(),
	)
}

func TestValidateDoesNotMutateState(t *testing.T) {
	t.Parallel()

	state := NewConstraintState()
	record := CandidateRecord{Name: "Thrall", Class: ClassShaman, Role: RoleHeal}

	_ = DefaultCatalog().Validate(record, state)

	assert.False(t, state.HasName("Thrall"))
	assert.Zero(t, state.Count(RoleHeal))
}

func TestValidateUnknownLiteralsAreIncompatible(t *testing.T) {
	t.Parallel()

	errs := DefaultCatalog().Validate(CandidateRecord{Name: "Rexxar", Class: Class("Hunter"), Role: Role("Pet")}, nil)

	require.Len(t, errs, 1)
	assert.Equal(t, KindIncompatibleClassRole, errs[0].Kind)
	assert.Equal(t, "Hunter cannot be a Pet.", errs[0].Message)
}

func TestConstraintStateClaimKeepsFirstName(t *testing.T) {
	t.Parallel()

	state := NewConstraintState()
	state.Claim(CandidateRecord{Name: "Jaina", Class: ClassMage, Role: RoleRangedDPS})
	state.Claim(CandidateRecord{Name: "Jaina", Class: ClassPaladin, Role: RoleTank})

	assert.True(t, state.HasName("Jaina"))
	assert.Equal(t, 1, state.Count(RoleRangedDPS))
	assert.Equal(t, 1, state.Count(RoleTank))
}

func TestStartsWithCapital(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "ascii upper", input: "Arthas", want: true},
		{name: "ascii lower", input: "arthas", want: false},
		{name: "unicode upper", input: "Éowyn", want: true},
		{name: "leading space", input: " Arthas", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartsWithCapital(tt.input))
		})
	}
}

func TestIncompleteRecordError(t *testing.T) {
	t.Parallel()

	err := IncompleteRecordError(4, []string{KeyClass, KeyPosition})

	assert.Equal(t, KindIncompleteRecord, err.Kind)
	assert.Equal(t, "Record at line 4 is missing Class, Position.", err.Error())
}
