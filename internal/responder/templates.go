package responder

import "github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"

// responseBank holds 3-6 candidate replies per intent. Selection among the
// candidates is random so repeated questions do not read like a script.
var responseBank = map[string][]string{
	models.IntentTaskManagement: {
		"¡Perfecto! Te ayudo a organizar tus tareas de manera inteligente. ¿Qué necesitas hacer específicamente?",
		"Excelente elección. Vamos a estructurar tu lista para que realmente puedas completarla.",
		"Genial, juntos vamos a organizar tu agenda de manera eficiente y realista.",
		"Entiendo que quieres gestionar tus tareas. Te ayudo a crear un sistema efectivo y sostenible.",
		"¡Perfecto! Te ayudo a priorizar y organizar tus tareas para maximizar tu productividad.",
	},
	models.IntentHabitTracking: {
		"¡Excelente! Los hábitos son la base del éxito. ¿Qué hábito quieres fortalecer?",
		"Perfecto, vamos a darle seguimiento a tus hábitos de una forma que funcione para ti.",
		"¡Genial! Los hábitos consistentes transforman vidas. Te ayudo a mantener el ritmo.",
		"Excelente decisión. Vamos a revisar tus rutinas y adaptarlas a tu estilo de vida.",
	},
	models.IntentProductivityAdvice: {
		"¡Perfecto! Te voy a dar consejos prácticos para maximizar tu productividad.",
		"Excelente, vamos a optimizar tu rutina para que seas más eficiente.",
		"¡Genial! Te ayudo a implementar técnicas probadas de productividad.",
		"Perfecto, juntos vamos a crear un sistema de productividad personalizado.",
	},
	models.IntentMotivation: {
		"¡Entiendo! Te voy a dar la motivación que necesitas para seguir adelante.",
		"Perfecto, vamos a encontrar tu fuente de motivación interna.",
		"¡Excelente! Te ayudo a mantener el ánimo alto y la energía positiva.",
		"Genial, juntos vamos a superar cualquier obstáculo que encuentres.",
		"Recuerda: cada pequeño progreso cuenta. Vamos paso a paso. 🌱",
	},
	models.IntentAnalyticsRequest: {
		"¡Perfecto! Te voy a mostrar un análisis detallado de tu progreso.",
		"Excelente, vamos a revisar tus estadísticas y patrones de comportamiento.",
		"¡Genial! Te ayudo a entender mejor tu productividad y tus hábitos.",
		"¡Excelente! Los datos son poderosos. Te muestro tu progreso real.",
	},
	models.IntentGreeting: {
		"¡Hola! ¿En qué puedo ayudarte hoy? Estoy aquí para tu crecimiento personal. 🌟",
		"¡Hola! Cuéntame qué tienes en mente y te ayudo. Cada conversación es una oportunidad para crecer. ✨",
		"¡Hola! Soy tu asistente personal. ¿Cómo puedo ayudarte? Tu productividad es mi misión. 🎯",
		"¡Hola! ¿Cómo te sientes hoy? Estoy aquí para escucharte y acompañarte. 💪",
	},
	models.IntentHelp: {
		"¡Estoy aquí para ti! 🌟 Puedo ayudarte a crear y organizar tareas, dar seguimiento a tus hábitos, darte consejos de productividad, motivarte y mostrarte tu progreso. ¿En qué área te gustaría que te apoye hoy?",
		"¡Tu bienestar es mi prioridad! ✨ Puedo crear tareas y hábitos contigo, revisar tus estadísticas y darte ánimo cuando lo necesites. ¿Qué quieres hacer?",
		"¡Con gusto te ayudo! Puedo gestionar tus tareas, tus hábitos y tu motivación diaria. Dime por dónde empezamos.",
	},
	models.IntentGoodbye: {
		"¡Que tengas un día increíble! 🌟 Recuerda que eres más fuerte de lo que crees. ¡Nos vemos pronto! ✨",
		"¡Hasta la próxima! 💫 Que tu energía positiva te guíe hacia el éxito.",
		"¡Que tengas un día maravilloso! 🌈 Tu potencial es ilimitado. ¡Nos vemos en tu próximo logro! 🚀",
	},
	models.IntentGeneral: {
		"¡Me encanta escucharte! 🌟 Cuéntame más y juntos encontraremos el siguiente paso.",
		"¡Estoy aquí para ti! ✨ Cada palabra que compartes me ayuda a entender mejor cómo acompañarte. ¿Qué te gustaría explorar hoy?",
		"Gracias por compartir eso conmigo. ¿Qué te gustaría trabajar o entender mejor?",
		"¡Perfecto! Estoy aquí para ayudarte con lo que necesites. ¿Qué tienes en mente?",
	},
	models.IntentCreateTask: {
		"¡Me encanta tu iniciativa! 🎯 Vamos a crear una tarea bien estructurada que realmente puedas completar.",
		"¡Excelente decisión! 🌟 Una buena tarea empieza con un nombre claro.",
		"¡Perfecto! 💫 Vamos a darle forma a esa tarea.",
	},
	models.IntentCreateHabit: {
		"¡Los cambios son tu superpoder! 🔥 Vamos a crear un hábito que funcione para ti.",
		"¡Genial! 🌱 Un hábito sostenible empieza pequeño.",
		"¡Excelente! ⭐ Vamos a diseñar un hábito que se adapte a tu estilo de vida.",
	},
	models.IntentEmotionalSupport: {
		"Entiendo que no te sientes bien. Es normal tener días difíciles. ¿Puedes contarme más sobre lo que te está pasando? Estoy aquí para escucharte.",
		"Veo que estás pasando por un momento difícil. No estás solo en esto. A veces hablar sobre ello hace que pese menos.",
		"Tus sentimientos son válidos. ¿Qué es lo que más te está afectando? Pequeños pasos pueden hacer una gran diferencia.",
		"Es valiente de tu parte reconocer cómo te sientes. ¿Qué necesitas en este momento? Estoy aquí para apoyarte.",
	},
	models.IntentViewTasks: {
		"¡Perfecto! 📋 Aquí tienes acceso directo a tu lista de tareas, donde puedes ver, editar y gestionar tus pendientes.",
		"¡Genial idea! 🎯 Revisar tus tareas con regularidad te ayuda a mantener el control de tu día.",
		"¡Excelente! 📝 Vamos a repasar tus tareas y ver cómo vas.",
	},
	models.IntentViewHabits: {
		"¡Excelente! 🔄 Aquí tienes tus hábitos: puedes ver tu progreso, marcar completados y ajustar tus rutinas.",
		"¡Perfecto! 🌱 Revisar tus hábitos te ayuda a mantener la consistencia.",
		"¡Genial! ⭐ Vamos a ver cómo van tus rachas.",
	},
}

// suggestionBank holds the quick-reply chips per intent.
var suggestionBank = map[string][]string{
	models.IntentTaskManagement:     {"Crear nueva tarea", "Ver lista de tareas", "Marcar tarea como completada", "Organizar por prioridad"},
	models.IntentHabitTracking:      {"Crear nuevo hábito", "Ver progreso de hábitos", "Marcar hábito completado", "Ver estadísticas"},
	models.IntentProductivityAdvice: {"Técnica Pomodoro", "Gestión del tiempo", "Priorización de tareas", "Eliminar distracciones"},
	models.IntentMotivation:         {"Establecer metas pequeñas", "Celebrar logros", "Visualizar el éxito", "Crear un plan de acción"},
	models.IntentAnalyticsRequest:   {"Ver estadísticas semanales", "Revisar progreso de hábitos", "Ver productividad", "Comparar períodos"},
	models.IntentGreeting:           {"Crear una tarea", "Establecer un hábito", "Ver todas mis tareas", "Ver mis hábitos"},
	models.IntentHelp:               {"Crear una tarea", "Ver mis hábitos", "Necesito motivación"},
	models.IntentGoodbye:            {"Hasta la próxima", "Gracias por escucharme"},
	models.IntentGeneral:            {"Crear una tarea", "Establecer un hábito", "Ver todas mis tareas", "Ver mis hábitos"},
	models.IntentCreateTask:         {"Cancelar", "Ver todas mis tareas"},
	models.IntentCreateHabit:        {"Cancelar", "Ver mis hábitos"},
	models.IntentEmotionalSupport:   {"Me siento mejor", "Necesito ayuda", "Quiero hablar más"},
	models.IntentViewTasks:          {"Crear nueva tarea", "Marcar tarea como completada", "Ver estadísticas"},
	models.IntentViewHabits:         {"Crear nuevo hábito", "Marcar hábito completado", "Ver progreso"},
}

// fallbackResponse is the static, intent-agnostic reply used when nothing
// else can be composed.
const fallbackResponse = "¡Hola! Soy tu asistente personal. Puedo ayudarte a crear tareas y hábitos, darte consejos de productividad y acompañarte cuando necesites motivación. ¿Qué te gustaría hacer?"

var fallbackSuggestions = []string{"Crear una tarea", "Establecer un hábito", "Ver todas mis tareas", "Necesito motivación"}
