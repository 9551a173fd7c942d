package pending

const findingTemplateSeparatorConstant = " "

// Finding records one positive check for one repository.
type Finding struct {
	RepositoryPath string
	Check          Check
}

// String renders the finding as "<path> <reason>".
func (finding Finding) String() string {
	return finding.RepositoryPath + findingTemplateSeparatorConstant + finding.Check.Reason()
}
