package openai

import (
	"fmt"
	"strings"

	"github.com/readytocook/v1/internal/ports/outbound"
)

// The prompts are in Spanish because the app and its users are Spanish
// speaking and the model mirrors the prompt language in its answers.

const recipeSystemPrompt = `Responde EXCLUSIVAMENTE con JSON valido.
No escribas texto fuera del JSON.
No incluyas comentarios ni explicaciones.`

const shelfLifeSystemPrompt = `Eres un experto en seguridad alimentaria. Respondes SOLO con números enteros.`

// buildRecipePrompt assembles the chef prompt from the inventory and the
// user's generation settings.
func buildRecipePrompt(req outbound.GenerationRequest) string {
	lines := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, fmt.Sprintf("%s (%s %s)", item.Name, item.Quantity, item.Unit))
	}
	ingredientsList := strings.Join(lines, ", ")

	var categoriesText string
	if len(req.Categories) > 0 {
		categoriesText = fmt.Sprintf("Categorías: %s", strings.Join(req.Categories, ", "))
	}

	var priorityText string
	if req.PriorityOnly {
		priorityText = "IMPORTANTE: Prioriza el uso de TODOS los ingredientes disponibles."
	}

	var regenerateText string
	if req.Regenerate {
		regenerateText = "\n\n⚠️ IMPORTANTE: Genera una receta COMPLETAMENTE DIFERENTE a la anterior. No repitas la misma receta, usa diferentes técnicas de cocción, sabores y/o combinaciones."
	}

	var usedNamesText string
	if len(req.UsedRecipeNames) > 0 {
		usedNamesText = fmt.Sprintf("\n\nRECETAS YA GENERADAS (NO REPITAS NOMBRES NI PLATILLOS SIMILARES): %s", strings.Join(req.UsedRecipeNames, ", "))
	}

	return fmt.Sprintf(`Eres un chef experto. Genera 1 receta usando estos ingredientes DISPONIBLES EN EL INVENTARIO: %s.

%s
Horario: %s
Porciones: %d personas
%s%s%s

REGLAS CRÍTICAS:
1. Si las categorías seleccionadas son incompatibles con los ingredientes disponibles (por ejemplo, "Vegetariana" pero hay carne, o "Vegana" pero hay lácteos/huevos), debes responder con un mensaje de error en lugar de generar una receta.
2. Si no es posible crear una receta que cumpla con TODAS las categorías seleccionadas simultáneamente, responde con un mensaje de error explicando la incompatibilidad.
3. Solo genera la receta si todos los ingredientes disponibles son compatibles con todas las categorías seleccionadas.

SEPARACIÓN DE INGREDIENTES (MUY IMPORTANTE):
- En "ingredients": SOLO incluye los ingredientes que están en la lista de DISPONIBLES arriba.
- En "missingIngredients": incluye CUALQUIER ingrediente que necesites pero NO esté en la lista de disponibles (sal, aceite, harina, azúcar, especias, condimentos, miel, etc.) y que cada ingrediente empiece con MAYÚSCULA.
- Si un ingrediente NO está en la lista de disponibles, DEBE ir en "missingIngredients", sin excepción.

FORMATO DE CANTIDADES (MUY IMPORTANTE):
- Si la cantidad de un ingrediente NO es un número (por ejemplo: "al gusto", "una pizca", "suficiente"), la primera letra DEBE ir en MAYÚSCULA.
- Ejemplos correctos: "Al gusto", "Una pizca", "Suficiente".
- NUNCA escribas cantidades no numéricas en minúsculas.

Para recetas válidas proporciona:
1. Nombre atractivo de la receta
2. Lista de ingredientes (SOLO los disponibles) con cantidades exactas ajustadas a %d personas
3. Lista de ingredientes faltantes (TODO lo que necesites pero no esté disponible)
4. Pasos de preparación numerados y detallados
5. Tiempo estimado de preparación en minutos
6. Si la receta no puede ajustarse exactamente a %d personas por la naturaleza de los ingredientes, indícalo

Formato de respuesta en JSON:

Para ERROR (categorías incompatibles):
{
  "error": "No es posible generar una receta [categoría] con los ingredientes seleccionados. [Explicación específica del conflicto]"
}

Para receta VÁLIDA:
{
  "recipe": [
    {
      "name": "Nombre de la receta",
      "categories": ["categoria1", "categoria2"],
      "ingredients": [
        {"name": "ingrediente", "quantity": "cantidad", "unit": "unidad"}
      ],
      "missingIngredients": [
        {"name": "ingrediente", "quantity": "cantidad", "unit": "unidad"}
      ],
      "instructions": ["paso 1", "paso 2", ...],
      "prepTime": 30,
      "servings": %d,
      "portionWarning": "Texto de advertencia si aplica o null"
    }
  ]
}

⚠️ RESPUESTA FINAL OBLIGATORIA:
- Devuelve SOLO el JSON.
- No escribas texto antes ni después.
- No uses bloques de codigo.
- No incluyas texto explicativo.`,
		ingredientsList,
		categoriesText,
		req.MealTime,
		req.Servings,
		priorityText,
		regenerateText,
		usedNamesText,
		req.Servings,
		req.Servings,
		req.Servings,
	)
}

// buildShelfLifePrompt asks for the refrigerated shelf life of a cooked
// dish made with the given ingredients.
func buildShelfLifePrompt(ingredientNames []string) string {
	return fmt.Sprintf(`Como experto en seguridad alimentaria, calcula cuántos días se puede almacenar de forma segura en refrigeración un platillo preparado con estos ingredientes: %s.

Considera el ingrediente más perecedero una vez COCIDO/PREPARADO y las normas de seguridad alimentaria estándar para alimentos cocinados refrigerados.

Responde ÚNICAMENTE con un número entero (días), sin texto adicional.`, strings.Join(ingredientNames, ", "))
}
