package classifier

import "github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"

// Bundled training corpus. The assistant's users write mostly in Spanish,
// with enough English phrases mixed in to cover bilingual habits. Creation
// phrases live only under create_task/create_habit so that managing existing
// items and starting a creation flow stay separable intents.
var intentCorpus = map[string][]string{
	models.IntentTaskManagement: {
		"completar tarea", "marcar como completada", "lista de tareas",
		"tareas pendientes", "priorizar tareas", "organizar tareas",
		"recordatorio de tarea", "tengo muchas cosas que hacer",
		"ayúdame a organizar mis tareas", "cómo organizo mis tareas",
		"tengo pendientes", "necesito recordatorios", "fecha límite",
		"organiza mi agenda", "complete task", "mark as done",
		"task list", "pending tasks", "prioritize tasks",
	},
	models.IntentHabitTracking: {
		"seguimiento de hábitos", "registrar hábito", "progreso de hábitos",
		"estadísticas de hábitos", "recordatorio de hábito",
		"racha de hábitos", "marcar hábito completado",
		"ayúdame a mantener un hábito", "quiero mejorar mis hábitos",
		"cómo mantener consistencia en mis hábitos",
		"quiero ser más consistente", "ayúdame con mis hábitos",
		"necesito rutinas", "necesito disciplina", "track habits",
		"log habit", "habit progress", "habit reminder",
	},
	models.IntentProductivityAdvice: {
		"consejos de productividad", "mejorar productividad",
		"técnicas de productividad", "gestión del tiempo",
		"método pomodoro", "técnica de bloqueo de tiempo",
		"cómo ser más productivo", "mejorar mi eficiencia",
		"técnicas para enfocarme mejor", "gestión de distracciones",
		"optimizar mi tiempo", "mejorar mi rutina", "necesito consejos",
		"cómo ser más eficiente", "ayúdame a ser productivo",
		"técnicas de estudio", "cómo concentrarme", "necesito organizarme",
		"quiero ser más eficiente", "productivity tips",
		"improve productivity", "optimize time",
	},
	models.IntentMotivation: {
		"necesito motivación", "estoy desmotivado",
		"consejos motivacionales", "mantener motivación",
		"superar procrastinación", "encontrar inspiración",
		"establecer metas", "lograr objetivos", "superar obstáculos",
		"necesito energía", "cómo mantener el ánimo", "superar la pereza",
		"encontrar propósito", "necesito ánimo", "necesito dirección",
		"quiero progresar", "ayúdame a motivarme", "necesito inspiración",
		"i need motivation", "motivate me",
	},
	models.IntentAnalyticsRequest: {
		"ver estadísticas", "mis analíticas", "reporte de productividad",
		"estadísticas de tareas", "resumen semanal", "cómo voy",
		"mi rendimiento", "análisis de productividad", "ver mi progreso",
		"estadísticas personales", "reporte de actividad",
		"cómo he estado", "mi desempeño", "quiero ver mi progreso",
		"mis estadísticas", "mi rendimiento semanal", "ver progreso",
		"show my statistics", "weekly report",
	},
	models.IntentGreeting: {
		"hola", "buenos días", "buenas tardes", "buenas noches",
		"cómo estás", "qué tal", "saludos", "buen día", "hey", "buenas",
		"qué pasa", "cómo va todo", "hello", "good morning", "hi",
	},
	models.IntentHelp: {
		"ayuda", "qué puedes hacer", "funciones", "cómo funciona esto",
		"para qué sirves", "necesito ayuda con la aplicación",
		"qué sabes hacer", "help", "what can you do",
	},
	models.IntentGoodbye: {
		"adiós", "chao", "hasta luego", "nos vemos", "hasta la próxima",
		"gracias", "muchas gracias", "hasta mañana", "me voy", "bye",
		"goodbye", "see you",
	},
	models.IntentGeneral: {
		"bien", "mal", "regular", "todo bien", "no sé", "tal vez",
		"quizás", "puede ser", "cuéntame algo", "qué opinas",
		"estoy aquí", "ok", "vale", "de nada",
	},
	models.IntentCreateTask: {
		"crear tarea", "nueva tarea", "agregar tarea", "tarea nueva",
		"crear una tarea", "quiero crear una tarea",
		"necesito crear tarea", "quiero agregar tarea", "añadir tarea",
		"necesito agregar algo a mi lista", "create task", "new task",
		"add task",
	},
	models.IntentCreateHabit: {
		"crear hábito", "nuevo hábito", "establecer hábito",
		"hábito nuevo", "crear un hábito", "quiero crear un hábito",
		"establecer un hábito", "necesito un hábito",
		"quiero empezar un hábito", "create habit", "new habit",
	},
	models.IntentEmotionalSupport: {
		"me siento mal", "estoy mal", "no me siento bien",
		"me siento triste", "estoy deprimido", "me siento ansioso",
		"estoy triste", "me siento perdido", "me siento abrumado",
		"estoy estresado", "no puedo más", "me siento frustrado",
		"estoy agotado", "no sé qué hacer", "me siento solo",
		"estoy cansado", "i feel sad", "i feel overwhelmed",
	},
	models.IntentViewTasks: {
		"ver tareas", "mis tareas", "lista tareas", "ver mis tareas",
		"ver todas mis tareas", "mostrar tareas", "listar tareas",
		"tareas existentes", "qué tareas tengo", "show my tasks",
	},
	models.IntentViewHabits: {
		"ver hábitos", "mis hábitos", "lista hábitos", "ver mis hábitos",
		"mostrar hábitos", "listar hábitos", "hábitos existentes",
		"qué hábitos tengo", "show my habits",
	},
}

var sentimentCorpus = map[string][]string{
	models.SentimentPositive: {
		"estoy feliz", "me siento bien", "excelente", "genial",
		"perfecto", "maravilloso", "fantástico", "increíble",
		"me encanta", "estoy contento", "muy bien", "super",
		"genial día", "me siento motivado", "estoy progresando",
		"lo estoy haciendo bien", "me siento orgulloso", "estoy emocionado",
		"conseguí lo que quería", "logré mi meta", "i feel great",
	},
	models.SentimentNegative: {
		"estoy triste", "me siento mal", "terrible", "horrible",
		"estoy cansado", "me siento abrumado", "estoy estresado",
		"no puedo más", "me siento perdido", "estoy confundido",
		"me siento frustrado", "estoy desmotivado", "no sé qué hacer",
		"estoy agotado", "no tengo energía", "estoy muy triste",
		"me siento solo", "i feel bad",
	},
	models.SentimentNeutral: {
		"estoy bien", "normal", "regular", "así así", "no sé",
		"tal vez", "quizás", "puede ser", "estoy aquí", "presente",
		"listo", "disponible", "ok", "vale",
	},
}
