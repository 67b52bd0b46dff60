package gtm

// listResponse is the body of a Tag Manager v2 list endpoint. Each
// endpoint populates exactly one of the three keys.
type listResponse struct {
	Tag      []rawElement `json:"tag"`
	Trigger  []rawElement `json:"trigger"`
	Variable []rawElement `json:"variable"`
}

// rawElement is the wire shape shared by tags, triggers and variables.
// Which of the id fields is set tells the element kinds apart.
type rawElement struct {
	TagID      string `json:"tagId"`
	TriggerID  string `json:"triggerId"`
	VariableID string `json:"variableId"`

	Name          string `json:"name"`
	Type          string `json:"type"`
	Notes         string `json:"notes"`
	TagManagerURL string `json:"tagManagerUrl"`

	Parameter       []rawParameter `json:"parameter"`
	FiringTriggerID []string       `json:"firingTriggerId"`

	Filter            []rawCondition `json:"filter"`
	CustomEventFilter []rawCondition `json:"customEventFilter"`
}

// rawParameter is a single configuration value. Template parameters
// carry Value; map- and list-typed parameters nest further parameters
// under Map or List instead.
type rawParameter struct {
	Type  string         `json:"type"`
	Key   string         `json:"key"`
	Value string         `json:"value"`
	List  []rawParameter `json:"list"`
	Map   []rawParameter `json:"map"`
}

// rawCondition is one firing condition of a trigger. Its operands hide
// inside the parameter list under the keys arg0, arg1 and negate.
type rawCondition struct {
	Type      string         `json:"type"`
	Parameter []rawParameter `json:"parameter"`
}

// container groups the three element lists fetched from one workspace.
type container struct {
	Tags      []rawElement
	Triggers  []rawElement
	Variables []rawElement
}
