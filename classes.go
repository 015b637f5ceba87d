package dxf

import "strings"

// ProxyFlags are the proxy capability bits of a DXF class definition
// (group code 90), controlling what operations remain allowed on a proxy
// entity/object when the application that registered its class is
// unavailable.
type ProxyFlags uint16

// Proxy capability flags, per the CLASSES section.
const (
	ProxyNone                       ProxyFlags = 0
	ProxyEraseAllowed                ProxyFlags = 1
	ProxyTransformAllowed             ProxyFlags = 2
	ProxyColorChangeAllowed            ProxyFlags = 4
	ProxyLayerChangeAllowed             ProxyFlags = 8
	ProxyLinetypeChangeAllowed           ProxyFlags = 16
	ProxyLinetypeScaleChangeAllowed        ProxyFlags = 32
	ProxyVisibilityChangeAllowed            ProxyFlags = 64
	ProxyCloningAllowed                      ProxyFlags = 128
	ProxyLineweightChangeAllowed               ProxyFlags = 256
	ProxyPlotStyleNameChangeAllowed              ProxyFlags = 512
	ProxyAllOperationsExceptCloning               ProxyFlags = 895
	ProxyAllOperationsAllowed                      ProxyFlags = 1023
	ProxyDisablesWarningDialog                       ProxyFlags = 1024
	ProxyR13FormatProxy                                ProxyFlags = 32768
)

// Contains reports whether all bits of flag are set in f.
func (f ProxyFlags) Contains(flag ProxyFlags) bool {
	return f&flag == flag
}

// Class is one entry of the CLASSES section: the registration record for a
// non-fixed entity or object type. Group codes per spec.md §4.9 /
// original_source/src/classes/mod.rs: 1=dxf name, 2=C++ class name,
// 3=application name, 90=proxy flags, 91=instance count, 280=was-zombie,
// 281=is-an-entity.
type Class struct {
	DXFName             string
	CppClassName        string
	ApplicationName     string
	ProxyFlags          ProxyFlags
	InstanceCount       int32
	WasZombie           bool
	IsEntity            bool
	ClassNumber         int16
	ItemClassID         int16 // 498 for entities, 499 for objects
	DWGVersion          int16
	MaintenanceVersion  int16
}

// NewClass creates an object (non-entity) class definition with the
// defaults ACadSharp-derived tooling uses.
func NewClass(dxfName, cppClassName string) Class {
	return Class{
		DXFName:         dxfName,
		CppClassName:    cppClassName,
		ApplicationName: "ObjectDBX Classes",
		ItemClassID:     499,
	}
}

// NewEntityClass creates an entity class definition (instances may appear
// in ENTITIES/BLOCKS rather than only in OBJECTS).
func NewEntityClass(dxfName, cppClassName string) Class {
	c := NewClass(dxfName, cppClassName)
	c.IsEntity = true
	c.ItemClassID = 498
	return c
}

// ClassTable is the CLASSES section: a collection of Class definitions,
// keyed case-insensitively by DXF name, grounded directly on
// original_source/src/classes/mod.rs's DxfClassCollection.
type ClassTable struct {
	entries []Class
	index   map[string]int
}

// NewClassTable creates an empty class table.
func NewClassTable() *ClassTable {
	return &ClassTable{index: make(map[string]int)}
}

// AddOrUpdate inserts a class, or - if a class with the same DXF name is
// already present - updates only its instance count, matching ACadSharp's
// DxfClassCollection::add_or_update.
func (t *ClassTable) AddOrUpdate(c Class) {
	key := strings.ToUpper(c.DXFName)
	if idx, ok := t.index[key]; ok {
		t.entries[idx].InstanceCount = c.InstanceCount
		return
	}
	if c.ClassNumber < 500 {
		c.ClassNumber = 500 + int16(len(t.entries))
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, c)
}

// ByName looks up a class by DXF name (case-insensitive).
func (t *ClassTable) ByName(dxfName string) (Class, bool) {
	idx, ok := t.index[strings.ToUpper(dxfName)]
	if !ok {
		return Class{}, false
	}
	return t.entries[idx], true
}

// Contains reports whether a class with the given name is registered.
func (t *ClassTable) Contains(dxfName string) bool {
	_, ok := t.index[strings.ToUpper(dxfName)]
	return ok
}

// Len returns the number of registered classes.
func (t *ClassTable) Len() int { return len(t.entries) }

// All returns the registered classes in registration order.
func (t *ClassTable) All() []Class {
	return append([]Class(nil), t.entries...)
}

// UpdateDefaults populates the table with the classes AutoCAD itself
// registers for types this library treats as always-present (proxy
// graphics, extended dictionaries, layouts, ...), without overwriting any
// class already read from the file. Mirrors
// DxfClassCollection::update_defaults.
func (t *ClassTable) UpdateDefaults() {
	for _, c := range defaultClasses() {
		if !t.Contains(c.DXFName) {
			t.AddOrUpdate(c)
		}
	}
}

// defaultClasses is the fixed set of classes AutoCAD registers by default,
// grounded verbatim (by name, not by translating Rust syntax) on
// original_source/src/classes/mod.rs::default_classes.
func defaultClasses() []Class {
	entityPairs := [][2]string{
		{"MESH", "AcDbSubDMesh"},
		{"ACAD_TABLE", "AcDbTable"},
		{"WIPEOUT", "AcDbWipeout"},
		{"IMAGE", "AcDbRasterImage"},
		{"PDFUNDERLAY", "AcDbPdfReference"},
		{"DWFUNDERLAY", "AcDbDwfReference"},
		{"DGNUNDERLAY", "AcDbDgnReference"},
		{"MULTILEADER", "AcDbMLeader"},
		{"OLE2FRAME", "AcDbOle2Frame"},
		{"MLINE", "AcDbMline"},
	}
	objectPairs := [][2]string{
		{"DICTIONARYWDFLT", "AcDbDictionaryWithDefault"},
		{"ACDBPLACEHOLDER", "AcDbPlaceHolder"},
		{"LAYOUT", "AcDbLayout"},
		{"DICTIONARYVAR", "AcDbDictionaryVar"},
		{"TABLESTYLE", "AcDbTableStyle"},
		{"MATERIAL", "AcDbMaterial"},
		{"VISUALSTYLE", "AcDbVisualStyle"},
		{"SCALE", "AcDbScale"},
		{"MLEADERSTYLE", "AcDbMLeaderStyle"},
		{"CELLSTYLEMAP", "AcDbCellStyleMap"},
		{"XRECORD", "AcDbXrecord"},
		{"SORTENTSTABLE", "AcDbSortentsTable"},
		{"WIPEOUTVARIABLES", "AcDbWipeoutVariables"},
		{"DIMASSOC", "AcDbDimAssoc"},
		{"TABLECONTENT", "AcDbTableContent"},
		{"TABLEGEOMETRY", "AcDbTableGeometry"},
		{"RASTERVARIABLES", "AcDbRasterVariables"},
		{"IMAGEDEF", "AcDbRasterImageDef"},
		{"IMAGEDEF_REACTOR", "AcDbRasterImageDefReactor"},
		{"DBCOLOR", "AcDbColor"},
		{"GEODATA", "AcDbGeoData"},
		{"PDFDEFINITION", "AcDbPdfDefinition"},
		{"DWFDEFINITION", "AcDbDwfDefinition"},
		{"DGNDEFINITION", "AcDbDgnDefinition"},
		{"SPATIALFILTER", "AcDbSpatialFilter"},
		{"PLOTSETTINGS", "AcDbPlotSettings"},
		{"GROUP", "AcDbGroup"},
		{"MLINESTYLE", "AcDbMlineStyle"},
	}

	classes := make([]Class, 0, len(entityPairs)+len(objectPairs))
	for _, p := range entityPairs {
		c := NewEntityClass(p[0], p[1])
		c.ProxyFlags = ProxyAllOperationsAllowed
		classes = append(classes, c)
	}
	for _, p := range objectPairs {
		c := NewClass(p[0], p[1])
		c.ProxyFlags = ProxyAllOperationsAllowed
		classes = append(classes, c)
	}
	return classes
}
