package debate

import "strings"

// catalogEntry pairs a set of lowercase keyword substrings with the debate
// topic and the fixed stance the bot will defend. An entry matches when any
// of its keywords appears in the opening message.
type catalogEntry struct {
	keywords []string
	topic    string
	stance   string
}

// Catalog order is part of the contract: when keyword sets overlap, the first
// matching entry wins.
var topicCatalog = []catalogEntry{
	// Science
	{[]string{"tierra plana", "terraplanismo", "tierra es plana"}, "Forma de la Tierra", "La Tierra es plana"},
	{[]string{"vacuna"}, "Vacunación", "Las vacunas son seguras y necesarias"},
	{[]string{"cambio climático", "calentamiento global"}, "Cambio climático", "El cambio climático exige acción inmediata"},
	{[]string{"energía nuclear", "central nuclear"}, "Energía nuclear", "La energía nuclear es clave para descarbonizar"},
	{[]string{"marte", "colonizar", "exploración espacial"}, "Exploración espacial", "Colonizar Marte es prioritario para la humanidad"},
	{[]string{"evolución", "darwin"}, "Evolución", "La evolución explica la diversidad de la vida"},
	{[]string{"astrología", "horóscopo"}, "Astrología", "La astrología carece de base empírica"},
	{[]string{"homeopatía", "medicina alternativa"}, "Medicinas alternativas", "Solo la medicina basada en evidencia debe financiarse"},
	{[]string{"transgénico", "organismos modificados"}, "Transgénicos", "Los transgénicos son seguros y útiles"},
	// Technology
	{[]string{"inteligencia artificial", "chatgpt", "modelos de lenguaje"}, "Inteligencia artificial", "La IA beneficia más de lo que amenaza"},
	{[]string{"privacidad", "datos personales", "vigilancia"}, "Privacidad digital", "La privacidad debe prevalecer sobre la conveniencia"},
	{[]string{"redes sociales", "instagram", "tiktok"}, "Redes sociales", "Las redes sociales dañan el debate público"},
	{[]string{"criptomoneda", "bitcoin", "blockchain"}, "Criptomonedas", "Las criptomonedas no sustituirán al dinero estatal"},
	{[]string{"videojuego", "gamer"}, "Videojuegos", "Los videojuegos son una forma legítima de arte"},
	{[]string{"coche eléctrico", "vehículo eléctrico"}, "Movilidad eléctrica", "El coche eléctrico debe reemplazar al de combustión"},
	{[]string{"software libre", "código abierto"}, "Software libre", "El software libre produce mejor tecnología"},
	// Economics
	{[]string{"trabajo remoto", "teletrabajo", "oficina"}, "Trabajo remoto vs oficina", "Pro trabajo remoto"},
	{[]string{"renta básica", "ingreso universal"}, "Renta básica universal", "La renta básica es viable y deseable"},
	{[]string{"impuesto", "fiscalidad"}, "Política fiscal", "Los impuestos progresivos reducen la desigualdad"},
	{[]string{"salario mínimo"}, "Salario mínimo", "Subir el salario mínimo beneficia a la economía"},
	{[]string{"globalización", "libre comercio"}, "Globalización", "El libre comercio genera más prosperidad que el proteccionismo"},
	{[]string{"inflación", "banco central"}, "Política monetaria", "La independencia de los bancos centrales es esencial"},
	{[]string{"semana de cuatro días", "jornada laboral"}, "Jornada laboral", "La semana de cuatro días aumenta la productividad"},
	// Social issues
	{[]string{"educación", "universidad", "escuela"}, "Educación", "La educación pública gratuita es una inversión, no un gasto"},
	{[]string{"inmigración", "migrante"}, "Inmigración", "La inmigración enriquece a las sociedades receptoras"},
	{[]string{"censura", "libertad de expresión"}, "Libertad de expresión", "La libertad de expresión admite muy pocos límites"},
	{[]string{"pena de muerte"}, "Pena de muerte", "La pena de muerte debe abolirse"},
	{[]string{"tauromaquia", "derechos de los animales"}, "Derechos de los animales", "Los animales merecen protección jurídica"},
	{[]string{"vegetariano", "vegano", "consumo de carne"}, "Alimentación", "Reducir el consumo de carne es un deber ambiental"},
	{[]string{"alquiler", "vivienda"}, "Vivienda", "La vivienda necesita intervención pública decidida"},
	// Philosophy
	{[]string{"libre albedrío", "determinismo"}, "Libre albedrío", "El libre albedrío es una ilusión útil"},
	{[]string{"religión", "ateísmo", "dios"}, "Religión", "La ética no necesita fundamento religioso"},
	{[]string{"simulación", "conciencia"}, "Filosofía de la mente", "Vivir en una simulación es indistinguible e irrelevante"},
	// Entertainment
	{[]string{"fútbol", "deporte"}, "Deporte", "El deporte amateur merece más atención que el profesional"},
	{[]string{"cine", "película", "series"}, "Cine y series", "El cine de autor supera al de franquicias"},
	{[]string{"reggaetón", "música"}, "Música", "Todos los géneros musicales tienen valor cultural"},
	{[]string{"novela", "lectura", "libro"}, "Literatura", "Leer ficción desarrolla la empatía"},
}

// Fallback pair when nothing in the catalog matches.
const (
	defaultTopic  = "Trabajo remoto vs oficina"
	defaultStance = "Pro trabajo remoto"
)

// Classify maps an opening message to a fixed (topic, stance) pair. It is
// pure and deterministic: lowercase substring matching in catalog order.
func Classify(openingMessage string) (topic, stance string) {
	msg := strings.ToLower(openingMessage)
	for _, entry := range topicCatalog {
		for _, kw := range entry.keywords {
			if strings.Contains(msg, kw) {
				return entry.topic, entry.stance
			}
		}
	}
	return defaultTopic, defaultStance
}
