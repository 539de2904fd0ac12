package catalog

// domains.go declares the static coded domains of the ANLA geodatabase model.

// FCMultimedia is Dom_FC_Multimedia. Capa geográfica asociada al registro multimedia.
var FCMultimedia = mustNumeric("Dom_FC_Multimedia",
	nm(1107, "MATERIALES_CONSTRUCCION_PT", "MaterialesConstruccionPT"),
	nm(1108, "MATERIALES_CONSTRUCCION_PG", "MaterialesConstruccionPG"),
	nm(1502, "OCUPACION_CAUCE", "OcupacionCauce"),
	nm(1503, "CAPTACION_AGUA_SUPER_PT", "CaptacionAguaSuperPT"),
	nm(1504, "CAPTACION_AGUA_SUPER_LN", "CaptacionAguaSuperLN"),
	nm(1505, "VERTIMIENTO_PT", "VertimientoPT"),
	nm(1506, "VERTIMIENTO_LN", "VertimientoLN"),
	nm(1507, "VERTIMIENTO_VIA", "VertimientoVia"),
	nm(1508, "VERTIMIENTO_SUELO", "VertimientoSuelo"),
	nm(1509, "PUNTO_MUESTREO_AGUA_SUPER", "PuntoMuestreoAguaSuper"),
	nm(2003, "PUNTO_MUESTREO_FLORA", "PuntoMuestreoFlora"),
	nm(2004, "PUNTO_MUESTREO_FAUNA", "PuntoMuestreoFauna"),
	nm(2005, "TRANSECTO_MUESTREO_FAUNA", "TransectoMuestreoFauna"),
	nm(2007, "APROVECHA_FORESTAL_PT", "AprovechaForestalPT"),
)

// Departamento is Dom_Departamento. División político-administrativa (Nivel Departamento).
var Departamento = mustText("Dom_Departamento",
	tm("91", "AMAZONAS", "Amazonas"),
	tm("05", "ANTIOQUIA", "Antioquia"),
	tm("81", "ARAUCA", "Arauca"),
	tm("88", "SAN_ANDRES", "Archipiélago de San Andrés, Providencia y Santa Catalina"),
	tm("08", "ATLANTICO", "Atlántico"),
	tm("11", "BOGOTA", "Bogotá, D.C."),
	tm("13", "BOLIVAR", "Bolívar"),
	tm("15", "BOYACA", "Boyacá"),
	tm("17", "CALDAS", "Caldas"),
	tm("18", "CAQUETA", "Caquetá"),
	tm("85", "CASANARE", "Casanare"),
	tm("19", "CAUCA", "Cauca"),
	tm("20", "CESAR", "Cesar"),
	tm("27", "CHOCO", "Chocó"),
	tm("23", "CORDOBA", "Córdoba"),
	tm("25", "CUNDINAMARCA", "Cundinamarca"),
	tm("94", "GUAINIA", "Guainía"),
	tm("95", "GUAVIARE", "Guaviare"),
	tm("41", "HUILA", "Huila"),
	tm("44", "LA_GUAJIRA", "La Guajira"),
	tm("47", "MAGDALENA", "Magdalena"),
	tm("50", "META", "Meta"),
	tm("52", "NARINO", "Nariño"),
	tm("54", "NORTE_SANTANDER", "Norte de Santander"),
	tm("86", "PUTUMAYO", "Putumayo"),
	tm("63", "QUINDIO", "Quindio"),
	tm("66", "RISARALDA", "Risaralda"),
	tm("68", "SANTANDER", "Santander"),
	tm("70", "SUCRE", "Sucre"),
	tm("73", "TOLIMA", "Tolima"),
	tm("76", "VALLE_DEL_CAUCA", "Valle del Cauca"),
	tm("97", "VAUPES", "Vaupés"),
	tm("99", "VICHADA", "Vichada"),
)

// Tenencia is Dom_Tenencia. Forma de tenencia de la propiedad.
var Tenencia = mustNumeric("Dom_Tenencia",
	nm(1, "PROPIEDAD_PRIVADA", "Propiedad privada"),
	nm(2, "PROPIEDAD_COLECTIVA", "Propiedad colectiva"),
	nm(3, "POSESION_SIN_TITULO", "Posesión sin título (baldíos o ejidos)"),
	nm(4, "OCUPANTE", "Ocupante (bienes de uso público)"),
	nm(5, "ARRENDATARIO", "Arrendatario"),
	nm(6, "MEJORATARIO", "Mejoratario"),
	nm(7, "USUFRUCTO_O_APARCERO", "Usufructo o aparcero"),
)

// TipoMuestreoFlo is Dom_TipoMuestreoFlo. Indica el tipo de diseño de muestreo utilizado en campo.
var TipoMuestreoFlo = mustNumeric("Dom_TipoMuestreoFlo",
	nm(311, "PUNTUAL", "Puntual"),
	nm(312, "PARCELA", "Parcela"),
	nm(313, "TRANSECTO", "Transecto"),
)

// Temporada is Dom_Temporada. Corresponde a la temporada climática en la que se realizó el muestreo.
var Temporada = mustNumeric("Dom_Temporada",
	nm(301, "SECO", "Seco"),
	nm(302, "HUMEDO", "Húmedo"),
	nm(303, "MEDIO", "Medio"),
	nm(304, "TODO_EL_ANNIO", "Todo el año"),
)

// Apendice is Dom_Apendice. Apéndice en el que se encuentra la especie según la Convención sobre el Comercio Internacional de Especies Amenazadas de Fauna
var Apendice = mustNumeric("Dom_Apendice",
	nm(100, "APENDICE_I", "Apendice I"),
	nm(200, "APENDICE_II", "Apendice II"),
	nm(300, "APENDICE_III", "Apendice III"),
	nm(400, "NO_APLICA", "No aplica"),
)

// Amenaza is Dom_Amenaza. Categoría de amenaza en la que se encuentra la especie según la UICN o el Ministerio de Ambiente.
var Amenaza = mustNumeric("Dom_Amenaza",
	nm(321, "PREOCUPACION_MENOR", "Preocupación Menor (LC)"),
	nm(322, "CASI_AMENAZADA", "Casi Amenazada (NT)"),
	nm(323, "VULNERABLE", "Vulnerable (VU)"),
	nm(324, "EN_PELIGRO", "Peligro (EN)"),
	nm(325, "PELIGRO_CRITICO", "Peligro Crítico (CR)"),
	nm(326, "EXTINTO_EN_ESTADO_SILVESTRE", "Extinto en estado silvestre (EW)"),
	nm(327, "EXTINTO", "Extinto (EX)"),
	nm(328, "DATOS_INSUFICIENTES", "Datos insuficientes (DD)"),
	nm(329, "NO_EVALUADO", "No Evaluado (NE)"),
	nm(330, "NO_APLICA", "No aplica"),
)

// TipoDistribu is Dom_Tipo_Distribu. Categoría de distribución geográfica de la especie.
var TipoDistribu = mustNumeric("Dom_Tipo_Distribu",
	nm(331, "COSMOPOLITA", "Cosmopolita"),
	nm(332, "RESTRINGIDA", "Restringida"),
	nm(333, "CASI_ENDEMICA", "Casi endémica"),
	nm(334, "ENDEMICA", "Endémica"),
)

// EntidadVeda is Dom_EntidadVeda. Entidad administrativa o ambiental que establece la veda.
var EntidadVeda = mustNumeric("Dom_EntidadVeda",
	nm(2040, "INDERENA", "INDERENA - Instituto Nacional de Recursos Naturales Renovables y del Ambiente"),
	nm(2041, "INCODER", "INCODER - Instituto Colombiano de Desarrollo Rural"),
	nm(2042, "MADS", "MADS - Ministerio de Ambiente y Desarrollo Sostenible"),
	nm(2043, "INCORA", "INCORA - Instituto Colombiano de la Reforma Agraria"),
	nm(2044, "INPA", "INPA - Instituto Nacional de Pesca y Acuicultura"),
	nm(2045, "MADR", "MADR - MInisterio de Agricultura y Desarrollo Rural"),
	nm(2039, "MAVDT", "MAVDT - Ministerio de Ambiente, Vivienda y Desarrollo Territorial"),
	nm(2081, "AMVA", "AMVA - Área Metropolitana del Valle de Aburrá – Medellín"),
	nm(2047, "CAM", "CAM - Corporación Autónoma Regional del Alto Magdalena"),
	nm(2048, "CAR", "CAR - Corporación Autónoma Regional de Cundinamarca"),
	nm(2049, "CARDER", "CARDER - Corporación Autónoma Regional de Risaralda"),
	nm(2050, "CARDIQUE", "CARDIQUE - Corporación Autónoma Regional del Canal Del Dique"),
	nm(2051, "CARSUCRE", "CARSUCRE - Corporación Autónoma Regional de Sucre"),
	nm(2052, "CAS", "CAS - Corporación Autónoma Regional de Santander"),
	nm(2053, "CDMB", "CDMB - Corporación Autónoma Regional para la Defensa de la Meseta de Bucaramanga"),
	nm(2054, "CORANTIOQUIA", "CORANTIOQUIA - Corporación Autónoma Regional del Centro de Antioquia"),
	nm(2055, "CORNARE", "CORNARE - Corporación Autónoma Regional de las Cuencas de los Ríos Negro y Nare"),
	nm(2056, "CORPAMAG", "CORPAMAG - Corporación Autónoma Regional del Magdalena"),
	nm(2057, "CORPOBOYACA", "CORPOBOYACA - Corporación Autónoma Regional de Boyacá"),
	nm(2058, "CORPOCALDAS", "CORPOCALDAS - Corporación Autónoma Regional de Caldas"),
	nm(2059, "CORPOCESAR", "CORPOCESAR - Corporación Autónoma Regional del Cesar"),
	nm(2060, "CORPOCHIVOR", "CORPOCHIVOR - Corporación Autónoma Regional de Chivor"),
	nm(2061, "CORPOGUAJIRA", "CORPOGUAJIRA - Corporación Autónoma Regional de La Guajira"),
	nm(2062, "CORPOGUAVIO", "CORPOGUAVIO - Corporación Autónoma Regional del Guavio"),
	nm(2063, "CORPONARINO", "CORPONARIÑO - Corporación Autónoma Regional de Nariño"),
	nm(2064, "CORPONOR", "CORPONOR - Corporación Autónoma Regional de la Frontera Nororiental"),
	nm(2065, "CORPORINOQUIA", "CORPORINOQUIA - Corporación Autónoma Regional de la Orinoquia"),
	nm(2066, "CORTOLIMA", "CORTOLIMA - Corporación Autónoma Regional del Tolima"),
	nm(2067, "CRA", "CRA - Corporación Autónoma Regional del Atlántico"),
	nm(2068, "CRC", "CRC - Corporación Autónoma Regional del Cauca"),
	nm(2069, "CRQ", "CRQ - Corporación Autónoma Regional del Quindío"),
	nm(2070, "CSB", "CSB - Corporación Autónoma Regional del Sur de Bolívar"),
	nm(2071, "CVC", "CVC - Corporación Autónoma Regional del Valle del Cauca"),
	nm(2072, "CVS", "CVS - Corporación Autónoma Regional de los Valles del Sinú y del San Jorge"),
	nm(2073, "CDA", "CDA - Corporación para el Desarrollo Sostenible del Norte y el Oriente Amazónico"),
	nm(2074, "CODECHOCO", "CODECHOCO - Corporación Autónoma Regional para el Desarrollo Sostenible del Chocó"),
	nm(2075, "CORALINA", "CORALINA - Corporación para el Desarrollo Sostenible del Archipiélago de San Andrés, Providencia y Santa Catalina"),
	nm(2076, "CORMACARENA", "CORMACARENA - Corporación para el Desarrollo Sostenible del Área de Manejo Especial de La Macarena"),
	nm(2077, "CORPOAMAZONIA", "CORPOAMAZONIA - Corporación para el Desarrollo Sostenible del Sur de la Amazonia"),
	nm(2078, "CORPOMOJANA", "CORPOMOJANA - Corporación para el Desarrollo Sostenible de La Mojana y El San Jorge"),
	nm(2079, "CORPOURABA", "CORPOURABA - Corporación para el Desarrollo Sostenible del Urabá"),
	nm(2080, "SDA", "SDA - Secretaría Distrital de Ambiente – Bogotá"),
	nm(2082, "DAGMA", "DAGMA - Departamento Administrativo de Gestión del Medio Ambiente – Cali"),
	nm(2083, "DAMAB", "DAMAB - Departamento Técnico Administrativo del Medio Ambiente de Barranquilla"),
	nm(2084, "DADMA", "DADMA - Departamento Administrativo Distrital del Medio Ambiente de Santa Marta"),
	nm(2085, "EPA", "EPA - Establecimiento Público Ambiental – Cartagena"),
	nm(2046, "OTRA", "Otra"),
)

// Vigencia is Dom_Vigencia. Determina si la veda establecida tiene un plazo definido o es permanente.
var Vigencia = mustNumeric("Dom_Vigencia",
	nm(2030, "TEMPORAL", "Temporal"),
	nm(2031, "INDEFINIDA", "Indefinida"),
)

// UsoFlora is Dom_Uso_Flora. Categoría de uso reportado para la especie de flora.
var UsoFlora = mustNumeric("Dom_Uso_Flora",
	nm(351, "ACTIVIDADES_PRODUCTIVAS", "Actividades Productivas"),
	nm(353, "ASEO", "Aseo"),
	nm(355, "USO_CULTURAL", "Uso Cultural"),
	nm(356, "CULTIVO", "Cultivo"),
	nm(359, "SUBSISTENCIA", "Subsistencia"),
	nm(361, "HABITACION", "Habitación"),
	nm(362, "OTRO", "Otro"),
)

// Habito is Dom_Habito. Hábito de crecimiento de la especie.
var Habito = mustNumeric("Dom_Habito",
	nm(371, "ARBOL", "Arbol"),
	nm(372, "ARBUSTO", "Arbusto"),
	nm(373, "HIERBA", "Hierba"),
	nm(374, "SUFRUTICE", "Sufrútice"),
	nm(375, "ENREDADERA", "Enredadera"),
	nm(376, "LIANA", "Liana"),
	nm(377, "EPIFITA", "Epífita"),
	nm(378, "HEMIPARASITA", "Hemiparásita"),
	nm(379, "SUCULENTAS", "Suculentas"),
	nm(380, "OTRO", "Otro"),
)

// Veda is Dom_Veda. Si la especie se encuentra en veda, indica el nivel administrativo correspondiente.
var Veda = mustNumeric("Dom_Veda",
	nm(341, "NACIONAL", "Nacional"),
	nm(342, "REGIONAL", "Regional"),
)

// TipoTransecto is Dom_TipoTransecto. Define la metodología de ancho del transecto utilizado.
var TipoTransecto = mustNumeric("Dom_TipoTransecto",
	nm(501, "ANCHO_FIJO", "Ancho fijo"),
	nm(502, "ANCHO_VARIABLE", "Ancho variable"),
	nm(503, "OTRO", "Otro"),
)

// TipoMigra is Dom_Tipo_Migra. Dominio para Tipo de Migración (TIPO_MIGR)
var TipoMigra = mustNumeric("Dom_Tipo_Migra",
	nm(101, "INTRAGENERACIONAL", "Intrageneracional"),
	nm(102, "INTERGENERACIONAL", "Intergeneracional"),
	nm(103, "CICLICA", "Cíclica"),
	nm(104, "UNIDIRECCIONAL", "Unidireccional"),
	nm(105, "ESTACIONAL", "Estacional"),
	nm(106, "IRRUPCION_POBLACIONAL", "Irrupción Poblacional"),
	nm(107, "NOMADISMO", "Nomadismo"),
	nm(108, "LATITUDINAL", "Latitudinal"),
	nm(109, "LONGITUDINAL", "Longitudinal"),
	nm(110, "ALTITUDINAL", "Altitudinal"),
)

// UsoFauna is Dom_Uso_Fauna. Dominio para Uso de la Especie (USO)
var UsoFauna = mustNumeric("Dom_Uso_Fauna",
	nm(301, "ACTIVIDADES_PRODUCTIVAS", "Actividades Productivas"),
	nm(302, "MASCOTAS", "Mascotas"),
	nm(303, "USO_CULTURAL", "Uso Cultural"),
	nm(304, "SUBSISTENCIA", "Subsistencia"),
	nm(305, "OTRO", "Otro"),
)

// Dieta is Dom_Dieta. Dominio: Dom_Dieta
var Dieta = mustNumeric("Dom_Dieta",
	nm(401, "FRUGIVORO", "Frugívoro"),
	nm(402, "HERBIVORO", "Herbívoro"),
	nm(403, "INSECTIVORO", "Insectivoro"),
	nm(404, "OMNIVORO", "Omnivoro"),
	nm(405, "CARNIVORO", "Carnivoro"),
	nm(406, "OTRO", "Otro"),
)

// Sector is Dom_Sector. Identifica el sector económico al que corresponde el proyecto licenciado.
var Sector = mustNumeric("Dom_Sector",
	nm(1, "ENERGIA", "Energía"),
	nm(2, "INFRAESTRUCTURA", "Infraestructura"),
	nm(3, "MINERIA", "Minería"),
	nm(4, "HIDROCARBUROS", "Hidrocarburos"),
	nm(5, "AGROQUIMICOS", "Agroquímicos"),
	nm(6, "OTRO", "Otro"),
)

// Boolean is Dom_Boolean. Indica la afirmación (1) o negación (2) ante una condición específica.
var Boolean = mustNumeric("Dom_Boolean",
	nm(1, "SI", "Sí"),
	nm(2, "NO", "No"),
)

// TipoMuestreoFau is Dom_TipoMuestreoFau. Tipo de metodología de muestreo utilizada para el levantamiento de fauna (Puntual o Parcela).
var TipoMuestreoFau = mustNumeric("Dom_TipoMuestreoFau",
	nm(411, "PUNTUAL", "Puntual"),
	nm(412, "PARCELA", "Parcela"),
)

// Deter is Dom_Deter. Forma o evidencia técnica mediante la cual fue determinada la presencia de la especie.
var Deter = mustNumeric("Dom_Deter",
	nm(411, "CAPTURA", "Captura de individuos"),
	nm(413, "OBSERVACION", "Observación"),
	nm(414, "MARCAS", "Marcas de Individuos"),
	nm(415, "DETECCION_AUDITIVA", "Detección auditiva"),
	nm(416, "HUELLAS", "Huellas"),
	nm(417, "HECES", "Heces"),
	nm(418, "PELOS", "Pelos"),
	nm(419, "OTRO", "Otro"),
)

// Regeneracion is Dom_Regeneracion. Categoría de tamaño para la regeneración natural.
var Regeneracion = mustNumeric("Dom_Regeneracion",
	nm(1, "RENUEVO_O_PLANTULA", "Renuevo o plántula"),
	nm(2, "BRINZAL", "Brinzal"),
	nm(3, "LATIZAL", "Latizal"),
)

// CAR is Dom_CAR. Autoridades ambientales (Corporaciones Autónomas Regionales y otras).
var CAR = mustNumeric("Dom_CAR",
	nm(1001, "AMVA", "AMVA"),
	nm(1002, "CAM", "CAM"),
	nm(1003, "CAR", "CAR"),
	nm(1004, "CARDER", "CARDER"),
	nm(1005, "CARDIQUE", "CARDIQUE"),
	nm(1006, "CARSUCRE", "CARSUCRE"),
	nm(1007, "CAS", "CAS"),
	nm(1008, "CDA", "CDA"),
	nm(1009, "CDMB", "CDMB"),
	nm(1010, "CODECHOCO", "CODECHOCO"),
	nm(1011, "CORALINA", "CORALINA"),
	nm(1012, "CORANTIOQUIA", "CORANTIOQUIA"),
	nm(1013, "CORMACARENA", "CORMACARENA"),
	nm(1014, "CORNARE", "CORNARE"),
	nm(1015, "CORPAMAG", "CORPAMAG"),
	nm(1016, "CORPOAMAZONIA", "CORPOAMAZONIA"),
	nm(1017, "CORPOBOYACA", "CORPOBOYACA"),
	nm(1018, "CORPOCALDAS", "CORPOCALDAS"),
	nm(1019, "CORPOCESAR", "CORPOCESAR"),
	nm(1020, "CORPOCHIVOR", "CORPOCHIVOR"),
	nm(1021, "CORPOGUAJIRA", "CORPOGUAJIRA"),
	nm(1022, "CORPOGUAVIO", "CORPOGUAVIO"),
	nm(1023, "CORPOMOJANA", "CORPOMOJANA"),
	nm(1024, "CORPONARINO", "CORPONARIÑO"),
	nm(1025, "CORPONOR", "CORPONOR"),
	nm(1026, "CORPORINOQUIA", "CORPORINOQUIA"),
	nm(1027, "CORPOURABA", "CORPOURABA"),
	nm(1028, "CORTOLIMA", "CORTOLIMA"),
	nm(1029, "CRA", "CRA"),
	nm(1030, "CRC", "CRC"),
	nm(1031, "CRQ", "CRQ"),
	nm(1032, "CSB", "CSB"),
	nm(1033, "CVC", "CVC"),
	nm(1034, "CVS", "CVS"),
	nm(1035, "DADMA", "DADMA"),
	nm(1036, "DAGMA", "DAGMA"),
	nm(1037, "DAMAB", "DAMAB"),
	nm(1038, "EPA", "EPA"),
	nm(1039, "SDA", "SDA"),
	nm(1040, "MADS", "MADS"),
	nm(1041, "SPNN", "SPNN"),
)

// TipoActadmin is Dom_Tipo_Actadmin. Tipo de acto administrativo (Auto o Resolución).
var TipoActadmin = mustNumeric("Dom_Tipo_Actadmin",
	nm(1, "AUTO", "Auto"),
	nm(2, "RESOLUCION", "Resolución"),
)

// SubActComp is Dom_SubAct_Comp. Subactividades asociadas a las medidas de compensación.
var SubActComp = mustNumeric("Dom_SubAct_Comp",
	nm(1201, "APOYO_AREAS_PUBLICAS", "Apoyo creación nuevas áreas protegidas publicas y su plan de manejo ambiental"),
	nm(1202, "CREAR_AREAS_PRIVADAS", "Crear nuevas áreas protegidas privadas y su plan de manejo ambiental"),
	nm(1203, "ACUERDOS_CONSERVACION", "Establecer acuerdos de conservación, servidumbre ecológicas, Incentivos para mantenimiento y conservación de las áreas"),
	nm(1204, "RESTAURACION_ECOLOGICA", "Restauración ecológica"),
	nm(1205, "REHABILITACION", "Rehabilitación"),
	nm(1206, "RECUPERACION", "Recuperación"),
	nm(1207, "REFORESTACION_PROTECTORA", "Reforestación protectora"),
	nm(1208, "HERRAMIENTAS_MANEJO_PAISAJE", "Herramienta de manejo de paisaje, proyectos silvopastoriles, agroforestales, silviculturales, etc) en áreas agrícolas y ganaderas"),
	nm(1209, "SANEAMIENTO_PREDIAL", "Saneamientos predial/restauración ecológica"),
	nm(1210, "AMPLIACION_RESTAURACION", "Ampliación y restauración ecológica"),
	nm(1211, "OTRA", "Otra"),
)

// OtrasComp is Dom_Otras_Comp. Otras medidas de compensación u obligaciones.
var OtrasComp = mustNumeric("Dom_Otras_Comp",
	nm(20101, "APROVECHAMIENTO_FORESTAL", "Aprovechamiento forestal"),
	nm(20102, "CONCESION_AGUAS", "Concesión de aguas"),
	nm(20103, "CONTINGENCIAS", "Contingencias"),
	nm(20104, "EMISIONES_ATMOSFERICAS", "Emisiones atmosféricas"),
	nm(20105, "LEVANTAMIENTO_VEDAS", "Levantamiento de vedas"),
	nm(20106, "MULTAS_SANCIONES", "Multas o sanciones"),
	nm(20107, "OCUPACION_CAUCE", "Ocupación de cauce"),
	nm(20108, "PAISAJE", "Paisaje"),
	nm(20110, "TALA_PODA", "Permiso de tala y poda"),
	nm(20111, "VERTIMIENTO", "Permiso de vertimiento"),
	nm(20112, "RESIDUOS_SOLIDOS", "Residuos sólidos"),
	nm(20113, "SUSTRACCION_RESERVAS", "Sustracción de áreas en las reservas forestales (la Ley 2ª de 1959)"),
	nm(20114, "CAMBIO_COBERTURA_USO", "Cambio de cobertura y uso del suelo"),
	nm(20115, "OTRA", "Otra"),
)

// EstInver is Dom_EstInver. Estado de la inversión (usualmente para la Inversión del 1%).
var EstInver = mustNumeric("Dom_EstInver",
	nm(35001, "EVALUACION", "Evaluación"),
	nm(35002, "APROBADO_POR_EJECUTAR", "Aprobado por ejecutar"),
	nm(35003, "APROBADO_EN_EJECUCION", "Aprobado en ejecución"),
	nm(35004, "EJECUTADO", "Ejecutado"),
	nm(35005, "NO_SE_EJECUTO", "No se ejecutó"),
	nm(35006, "NO_VIABLE", "No viable"),
	nm(35007, "MODIFICADO", "Modificado"),
)
