package profiles

import (
	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/beevik/etree"
)

// Element and attribute names of the XML settings written by the
// IDE plugin this tool replaces (configurable-filename.xml).
const (
	xmlComponentName = "ConfigurableFilename"
	xmlEntryTag      = "ConfigurableFilename"
	xmlListOption    = "filenames"
)

// ImportXML reads profiles from XML plugin settings. The component can sit
// at any depth, so both the standalone file and a full project file work.
func ImportXML(data []byte) ([]Profile, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrProfileImport, "failed to parse XML settings")
	}

	component := doc.FindElement("//component[@name='" + xmlComponentName + "']")
	if component == nil {
		return nil, errors.Newf(errors.ErrProfileImport, "no %s component in XML settings", xmlComponentName)
	}

	var imported []Profile
	for _, entry := range component.FindElements("./option[@name='" + xmlListOption + "']/list/" + xmlEntryTag) {
		p := Profile{}
		for _, opt := range entry.SelectElements("option") {
			value := opt.SelectAttrValue("value", "")
			switch opt.SelectAttrValue("name", "") {
			case "type":
				p.ID = value
			case "defaultExtension":
				p.DefaultExtension = value
			case "template":
				p.Template = value
			}
		}
		p = p.Normalize()
		if p.ID == "" {
			log.Warn().Int("entry", len(imported)).Msg("Skipping XML entry without a type")
			continue
		}
		imported = append(imported, p)
	}

	log.Info().Int("count", len(imported)).Msg("Imported profiles from XML settings")
	return imported, nil
}

// ExportXML renders profiles in the XML settings layout read by ImportXML
func ExportXML(profiles []Profile) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	project := doc.CreateElement("project")
	project.CreateAttr("version", "4")

	component := project.CreateElement("component")
	component.CreateAttr("name", xmlComponentName)

	listOpt := component.CreateElement("option")
	listOpt.CreateAttr("name", xmlListOption)
	list := listOpt.CreateElement("list")

	for _, p := range profiles {
		entry := list.CreateElement(xmlEntryTag)
		addOption(entry, "defaultExtension", p.DefaultExtension)
		addOption(entry, "template", p.Template)
		addOption(entry, "type", p.ID)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProfileImport, "failed to render XML settings")
	}
	return out, nil
}

// addOption skips empty values, matching how the IDE omits null bean fields
func addOption(parent *etree.Element, name, value string) {
	if value == "" {
		return
	}
	opt := parent.CreateElement("option")
	opt.CreateAttr("name", name)
	opt.CreateAttr("value", value)
}
