package entity

// RoleType is the class an entity currently plays.
type RoleType int8

const (
	RoleNone RoleType = iota - 1
	RoleScp173
	RoleClassD
	RoleSpectator
	RoleScp106
	RoleNtfSpecialist
	RoleScp049
	RoleScientist
	RoleScp079
	RoleChaosConscript
	RoleScp096
	RoleScp0492
	RoleNtfSergeant
	RoleNtfCaptain
	RoleNtfPrivate
	RoleTutorial
	RoleFacilityGuard
	RoleScp939
	RoleCustomRole
	RoleChaosRifleman
	RoleChaosMarauder
	RoleChaosRepressor
	RoleOverwatch
	RoleFiltered
	RoleScp3114
)

// RoleNames maps lower-case role names to roles.
var RoleNames = map[string]RoleType{
	"none":           RoleNone,
	"scp173":         RoleScp173,
	"classd":         RoleClassD,
	"spectator":      RoleSpectator,
	"scp106":         RoleScp106,
	"ntfspecialist":  RoleNtfSpecialist,
	"scp049":         RoleScp049,
	"scientist":      RoleScientist,
	"scp079":         RoleScp079,
	"chaosconscript": RoleChaosConscript,
	"scp096":         RoleScp096,
	"scp0492":        RoleScp0492,
	"ntfsergeant":    RoleNtfSergeant,
	"ntfcaptain":     RoleNtfCaptain,
	"ntfprivate":     RoleNtfPrivate,
	"tutorial":       RoleTutorial,
	"facilityguard":  RoleFacilityGuard,
	"scp939":         RoleScp939,
	"customrole":     RoleCustomRole,
	"chaosrifleman":  RoleChaosRifleman,
	"chaosmarauder":  RoleChaosMarauder,
	"chaosrepressor": RoleChaosRepressor,
	"overwatch":      RoleOverwatch,
	"filtered":       RoleFiltered,
	"scp3114":        RoleScp3114,
}

func (r RoleType) String() string { return nameOf(RoleNames, r, "role") }

// Team groups roles that fight on the same side.
type Team uint8

const (
	TeamSCPs Team = iota
	TeamFoundationForces
	TeamChaosInsurgency
	TeamScientists
	TeamClassD
	TeamDead
	TeamOtherAlive
)

// TeamNames maps lower-case team names to teams.
var TeamNames = map[string]Team{
	"scps":             TeamSCPs,
	"foundationforces": TeamFoundationForces,
	"chaosinsurgency":  TeamChaosInsurgency,
	"scientists":       TeamScientists,
	"classd":           TeamClassD,
	"dead":             TeamDead,
	"otheralive":       TeamOtherAlive,
}

func (t Team) String() string { return nameOf(TeamNames, t, "team") }

// ItemType is the kind of item an entity holds.
type ItemType int16

const ItemNone ItemType = -1

const (
	ItemKeycardJanitor ItemType = iota
	ItemKeycardScientist
	ItemKeycardResearchCoordinator
	ItemKeycardZoneManager
	ItemKeycardGuard
	ItemKeycardMTFPrivate
	ItemKeycardContainmentEngineer
	ItemKeycardMTFOperative
	ItemKeycardMTFCaptain
	ItemKeycardFacilityManager
	ItemKeycardChaosInsurgency
	ItemKeycardO5
	ItemRadio
	ItemGunCOM15
	ItemMedkit
	ItemFlashlight
	ItemMicroHID
	ItemSCP500
	ItemSCP207
)

// ItemNames maps lower-case item names to item types.
var ItemNames = map[string]ItemType{
	"none":                       ItemNone,
	"keycardjanitor":             ItemKeycardJanitor,
	"keycardscientist":           ItemKeycardScientist,
	"keycardresearchcoordinator": ItemKeycardResearchCoordinator,
	"keycardzonemanager":         ItemKeycardZoneManager,
	"keycardguard":               ItemKeycardGuard,
	"keycardmtfprivate":          ItemKeycardMTFPrivate,
	"keycardcontainmentengineer": ItemKeycardContainmentEngineer,
	"keycardmtfoperative":        ItemKeycardMTFOperative,
	"keycardmtfcaptain":          ItemKeycardMTFCaptain,
	"keycardfacilitymanager":     ItemKeycardFacilityManager,
	"keycardchaosinsurgency":     ItemKeycardChaosInsurgency,
	"keycardo5":                  ItemKeycardO5,
	"radio":                      ItemRadio,
	"guncom15":                   ItemGunCOM15,
	"medkit":                     ItemMedkit,
	"flashlight":                 ItemFlashlight,
	"microhid":                   ItemMicroHID,
	"scp500":                     ItemSCP500,
	"scp207":                     ItemSCP207,
}

func (i ItemType) String() string { return nameOf(ItemNames, i, "item") }

func nameOf[T comparable](names map[string]T, v T, kind string) string {
	for name, candidate := range names {
		if candidate == v {
			return name
		}
	}
	return kind + "(?)"
}
