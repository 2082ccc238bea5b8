package validator

import (
	"tdl/internal/ast"
	"tdl/internal/diag"
)

// Validate runs the full rule catalog over doc and returns one bag holding
// the concatenation of each rule's diagnostics, in the fixed catalog order
// spec §4.4 lists: semantic rules, then Link-16 rules, then Link-22 rules.
// Within one rule, diagnostics are emitted in document order.
func Validate(doc *ast.Document) *diag.Bag {
	bag := diag.NewBag()
	r := diag.BagReporter{Bag: bag}

	// Semantic (level 2): every network, regardless of link type.
	checkValidLinkType(r, doc)
	checkValidClassification(r, doc)
	checkTrackNumberUniqueness(r, doc)
	checkNetNumberUniqueness(r, doc)

	// Link-16 (level 3).
	checkNCSRequired(r, doc)
	checkLink16ValidRole(r, doc)
	checkValidPlatformType(r, doc)
	checkValidTrackNumber(r, doc)
	checkValidNetNumber(r, doc)
	checkValidTSDF(r, doc)
	checkTotalTSDFBudget(r, doc)
	checkStackingConsistency(r, doc)
	checkNPGSubscriberCoverage(r, doc)
	checkPPLIRequired(r, doc)
	checkValidNPGReference(r, doc)
	checkValidJMessageReference(r, doc)
	checkMessageNPGMatch(r, doc)
	checkParticipantReference(r, doc)
	checkLink16RequiredProperty(r, doc)

	// Link-22 (level 3).
	checkLink22ValidRole(r, doc)
	checkValidOperatingMode(r, doc)
	checkValidDataRate(r, doc)
	checkValidUnitID(r, doc)
	checkValidForwarding(r, doc)
	checkLink22ControllerRequired(r, doc)
	checkLink22Forwarding(r, doc)
	checkUnitIDUniqueness(r, doc)
	checkLink22RequiredProperty(r, doc)

	return bag
}
